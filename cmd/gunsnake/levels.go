package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gunsnake/internal/config"
	"github.com/vovakirdan/gunsnake/internal/engine"
	"github.com/vovakirdan/gunsnake/internal/levels"
	"github.com/vovakirdan/gunsnake/internal/levels/formats"
)

var flagLevelSize string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Manage levels",
	Long: `List, inspect, store and remove levels.

Built-in levels (Empty, Walled, Stripped) exist for every field size.
Stored levels are YAML files in the levels directory from the settings.`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and stored levels",
	Args:  cobra.NoArgs,
	RunE:  runLevelsList,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a level as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsShow,
}

var levelsSaveBuiltinCmd = &cobra.Command{
	Use:   "save-builtin <name> [new-name]",
	Short: "Copy a built-in level into the levels directory so it can be edited",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runLevelsSaveBuiltin,
}

var levelsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a stored level",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsRemove,
}

func init() {
	levelsCmd.PersistentFlags().StringVar(&flagLevelSize, "field-size", "", "Field size for built-ins (default from settings)")
	levelsCmd.AddCommand(levelsListCmd, levelsShowCmd, levelsSaveBuiltinCmd, levelsRemoveCmd)
}

func levelSize() (int, int, error) {
	if flagLevelSize == "" {
		w, h := settings.Dimensions()
		return w, h, nil
	}
	w, h, ok := config.FieldSize(flagLevelSize).Dimensions()
	if !ok {
		return 0, 0, fmt.Errorf("unknown field size %q", flagLevelSize)
	}
	return w, h, nil
}

func runLevelsList(_ *cobra.Command, _ []string) error {
	w, h, err := levelSize()
	if err != nil {
		return err
	}
	loader := levelLoader()
	stored, err := loader.LoadAll()
	if err != nil {
		return err
	}

	fmt.Printf("  %-20s  %-8s  %-9s  %s\n", "Name", "Size", "Source", "Editable")
	fmt.Printf("  %-20s  %-8s  %-9s  %s\n", "----", "----", "------", "--------")
	for _, name := range levels.BuiltinNames {
		fmt.Printf("  %-20s  %-8s  %-9s  %s\n", name, fmt.Sprintf("%dx%d", w, h), "built-in", "no")
	}
	for _, e := range stored {
		editable := "no"
		if e.Level.Modifiable {
			editable = "yes"
		}
		fmt.Printf("  %-20s  %-8s  %-9s  %s\n", e.Level.Name,
			fmt.Sprintf("%dx%d", e.Level.Width, e.Level.Height), "stored", editable)
	}
	if len(stored) == 0 {
		fmt.Printf("\nNo stored levels in %s\n", loader.Root)
	}
	return nil
}

func findLevel(name string, w, h int) (engine.Level, error) {
	for _, b := range levels.BuiltinNames {
		if strings.EqualFold(b, name) {
			l, _ := levels.Builtin(b, w, h)
			return l, nil
		}
	}
	e, err := levelLoader().LoadByName(name)
	if err != nil {
		return engine.Level{}, err
	}
	return e.Level, nil
}

func runLevelsShow(_ *cobra.Command, args []string) error {
	w, h, err := levelSize()
	if err != nil {
		return err
	}
	l, err := findLevel(args[0], w, h)
	if err != nil {
		return err
	}
	data, err := formats.EncodeYAML(formats.Slug(l.Name), l)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runLevelsSaveBuiltin(_ *cobra.Command, args []string) error {
	w, h, err := levelSize()
	if err != nil {
		return err
	}
	var l engine.Level
	found := false
	for _, b := range levels.BuiltinNames {
		if strings.EqualFold(b, args[0]) {
			l, found = levels.Builtin(b, w, h)
		}
	}
	if !found {
		return fmt.Errorf("%q is not a built-in level (%s)", args[0], strings.Join(levels.BuiltinNames, ", "))
	}
	l.Name = "Custom " + l.Name
	if len(args) == 2 {
		l.Name = args[1]
	}
	l.Modifiable = true

	e, err := levelLoader().Save(l)
	if err != nil {
		return err
	}
	logger.Info("level saved", "name", l.Name, "path", e.FilePath)
	fmt.Printf("Saved %q to %s\n", l.Name, e.FilePath)
	return nil
}

func runLevelsRemove(_ *cobra.Command, args []string) error {
	if err := levelLoader().Remove(args[0]); err != nil {
		return err
	}
	fmt.Printf("Removed %q\n", args[0])
	return nil
}
