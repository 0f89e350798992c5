package commands

import (
	"flag"
	"fmt"
	"os"
)

// Init implements the 'slidemenu init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	configPath := fs.String("config", DefaultConfigPath, "Path of the config file to create")
	scriptPath := fs.String("script", "", "Also write an example gesture script to this path")
	force := fs.Bool("force", false, "Overwrite existing files")
	fs.Parse(args)

	if _, err := os.Stat(*configPath); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", *configPath)
	}

	if err := SaveConfig(*configPath, DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", *configPath)

	if *scriptPath != "" {
		if _, err := os.Stat(*scriptPath); err == nil && !*force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", *scriptPath)
		}
		if err := os.WriteFile(*scriptPath, []byte(exampleScript), 0644); err != nil {
			return fmt.Errorf("failed to create %s: %w", *scriptPath, err)
		}
		fmt.Printf("  ✓ Created %s\n", *scriptPath)
	}

	fmt.Println("")
	fmt.Println("Next steps:")
	fmt.Printf("  slidemenu run --config %s\n", *configPath)
	if *scriptPath != "" {
		fmt.Printf("  slidemenu simulate --script %s\n", *scriptPath)
	}
	return nil
}

const exampleScript = `# Gesture script for 'slidemenu simulate'.
# Distances are pixels, times are milliseconds from the start.
width = 480
height = 800
menu_width = 240
touch_slop = 5.0
duration_per_pixel_ms = 2.0
easing = "viscous"
frame_interval_ms = 16

# Drag right past the menu midpoint and release: the menu opens.
[[events]]
kind = "down"
x = 20.0
y = 300.0
at_ms = 0

[[events]]
kind = "move"
x = 90.0
y = 302.0
at_ms = 16

[[events]]
kind = "move"
x = 170.0
y = 305.0
at_ms = 32

[[events]]
kind = "up"
x = 170.0
y = 305.0
at_ms = 48

# Close it again programmatically once it has settled.
[[events]]
kind = "close"
at_ms = 600
`
