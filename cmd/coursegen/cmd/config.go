package cmd

import (
	"fmt"

	"github.com/CourseplayPathEditor/course-generator/config"
	"github.com/spf13/cobra"
)

// configCmd creates a settings file prefilled with default values.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a course settings file",
	Long: `Create a course settings file in YAML format, prefilled with default values.

If FILE is not provided, 'coursegen.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "coursegen.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		if err := config.Save(path, config.NewDefaultSettings()); err != nil {
			fmt.Println("failed to write settings:", err)
			return
		}
		fmt.Printf("course settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
