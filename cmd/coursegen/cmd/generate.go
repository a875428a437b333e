package cmd

import (
	"fmt"

	"github.com/CourseplayPathEditor/course-generator/config"
	"github.com/CourseplayPathEditor/course-generator/coursegen"
	"github.com/CourseplayPathEditor/course-generator/courseio"
	"github.com/CourseplayPathEditor/course-generator/diag"
	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/CourseplayPathEditor/course-generator/smooth"
	"github.com/spf13/cobra"
)

var (
	fieldFileVal  string
	configFileVal string
	verboseVal    bool
)

// generateCmd builds a full coverage course from a field boundary file and
// writes it to OUTFILE.
var generateCmd = &cobra.Command{
	Use:   "generate OUTFILE",
	Short: "generate a coverage course from a field boundary",
	Long: `Generate a coverage course from a field boundary in YAML.
Planning is controlled by the provided settings file. The generated
course is saved to OUTFILE in XML.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outfile := args[0]

		if fieldFileVal == "" {
			return fmt.Errorf("--field is required")
		}

		fieldInput, err := courseio.LoadField(fieldFileVal)
		if err != nil {
			return err
		}

		settings := config.NewDefaultSettings()
		if configFileVal != "" {
			settings, err = config.Load(configFileVal)
			if err != nil {
				return err
			}
		}
		if fieldInput.Width > 0 {
			settings.ImplementWidth = fieldInput.Width
		}
		if fieldInput.NHeadlandPasses > 0 {
			settings.NHeadlandPasses = fieldInput.NHeadlandPasses
		}
		if fieldInput.IsClockwise != nil {
			settings.HeadlandClockwise = *fieldInput.IsClockwise
		}

		var logger diag.Logger = diag.NoopLogger{}
		if verboseVal {
			logger = &verboseLogger{}
		}

		field := coursegen.NewField(fieldInput.Boundary)
		opts := coursegen.Options{
			ImplementWidth:                 settings.ImplementWidth,
			NHeadlandPasses:                settings.NHeadlandPasses,
			HeadlandClockwise:              settings.HeadlandClockwise,
			HeadlandStartLocation:          geo.Point{X: settings.HeadlandStartX, Y: settings.HeadlandStartY},
			OverlapPercent:                 settings.OverlapPercent,
			UseBoundaryAsFirstHeadlandPass: settings.UseBoundaryAsFirstHeadlandPass,
			NTracksToSkip:                  settings.NTracksToSkip,
			ExtendTracks:                   settings.ExtendTracks,
			MinVertexDistance:              settings.MinVertexDistance,
			AngleThreshold:                 settings.AngleThreshold,
			DoSmooth:                       settings.DoSmooth,
			Smoother:                       smooth.Chaikin{},
			Logger:                         logger,
		}

		result := coursegen.GenerateCourseForField(field, opts)

		if err := courseio.WriteCourseToFile(result.Course, outfile); err != nil {
			return err
		}
		fmt.Printf("course written to '%s' (%d waypoints, %d headland passes)\n", outfile, len(result.Course), len(result.HeadlandTracks))
		return nil
	},
}

// verboseLogger prints every diagnostic message to stdout, for --verbose.
type verboseLogger struct{}

func (verboseLogger) Progress(format string, args ...interface{}) {
	fmt.Printf("progress: "+format+"\n", args...)
}

func (verboseLogger) Warning(format string, args ...interface{}) {
	fmt.Printf("warning: "+format+"\n", args...)
}

func (verboseLogger) Error(format string, args ...interface{}) {
	fmt.Printf("error: "+format+"\n", args...)
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&fieldFileVal, "field", "", "input field boundary YAML file (required)")
	generateCmd.Flags().StringVar(&configFileVal, "config", "", "course settings YAML file (defaults used if omitted)")
	generateCmd.Flags().BoolVarP(&verboseVal, "verbose", "v", false, "print diagnostic messages as planning proceeds")
}
