package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mixlab/internal/knowledge"
)

const starterCatalog = `version: 1

consumables:
  - name: apple
    category: food
    safety_level: safe
    nutrition:
      calories: 95
      protein: 0.5
      carbs: 25
      fat: 0.3
  - name: banana
    category: food
    safety_level: safe
    nutrition:
      calories: 105
      protein: 1.3
      carbs: 27
      fat: 0.4
  - name: coffee
    category: beverage
    safety_level: caution
  - name: beer
    category: alcohol
    safety_level: warning
  - name: aspirin
    category: medication
    safety_level: caution
  - name: vitamin c
    category: supplement
    safety_level: safe
`

func initCmd() *cobra.Command {
	var profileName string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new mixlab project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(profileName) == "" {
				return fmt.Errorf("--profile is required")
			}
			return runInit(profileName)
		},
	}
	cmd.Flags().StringVar(&profileName, "profile", "", "Profile name")
	return cmd
}

func runInit(profileName string) error {
	knowledgePath := "knowledge.yaml"
	catalogPath := "catalog.yaml"
	for _, path := range []string{configPath, knowledgePath, catalogPath} {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}

	configContents := fmt.Sprintf("profile: %s\nversion: 1\n\ndatabase:\n  driver: sqlite\n  dsn: sqlite://mixlab.db\n\nknowledge: %s\ncatalog: %s\n", profileName, knowledgePath, catalogPath)
	if err := os.WriteFile(configPath, []byte(configContents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	knowledgeContents, err := yaml.Marshal(knowledge.Default())
	if err != nil {
		return fmt.Errorf("rendering default knowledge base: %w", err)
	}
	if err := os.WriteFile(knowledgePath, knowledgeContents, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", knowledgePath, err)
	}

	if err := os.WriteFile(catalogPath, []byte(starterCatalog), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", catalogPath, err)
	}

	fmt.Fprintf(os.Stdout, "Initialized mixlab project for profile %q.\n", profileName)
	return nil
}
