package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gunsnake/internal/platform/tui"
)

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound := newSoundManager()
	defer sound.Close()

	return tui.RunSession(store, gameFactory(store, sound), runtimeConfig(), settings.Player, logger)
}
