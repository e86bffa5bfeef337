package main

import (
	"fmt"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/n-ulricksen/dmg-core/dmg"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: dmgcore <rom-path>")
		os.Exit(1)
	}
	romPath := os.Args[1]

	rom, err := dmg.LoadCartridge(romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dmgcore: %v\n", err)
		os.Exit(1)
	}

	joypad := dmg.NewJoypad()
	emu := dmg.NewEmulator(joypad)

	if err := emu.Bus().LoadROM(rom); err != nil {
		fmt.Fprintf(os.Stderr, "dmgcore: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting DMG core...")

	pixelgl.Run(func() {
		window, err := dmg.NewWindow(joypad)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dmgcore: %v\n", err)
			os.Exit(1)
		}

		if err := emu.Run(window, window); err != nil {
			fmt.Fprintf(os.Stderr, "dmgcore: %v\n", err)
			os.Exit(1)
		}
	})
}
