package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/gen2brain/beeep"
	cli "github.com/spf13/cobra"
	"gitlab.com/web-doodle/face-annotator/pkg/annotate"
	"gitlab.com/web-doodle/face-annotator/pkg/face"
)

var (
	analyzeCmd = &cli.Command{
		Use:   "analyze",
		Short: "Detect faces in each image, draw them and save an annotated copy",
		Run:   Analyze,
	}
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.PersistentFlags().StringArrayP("image", "i", annotate.DefaultImages, "Path to an image to analyse. Repeat for several images; they are processed in order.")
	analyzeCmd.PersistentFlags().StringP("output", "o", ".", "Path to local output directory for annotated images.")
	analyzeCmd.PersistentFlags().String("prefix", annotate.DefaultPrefix, "Prefix added to the base name of each annotated image.")
	analyzeCmd.PersistentFlags().String("font", annotate.DefaultFontFile, "Path to a TrueType/OpenType font for face tags. Falls back to a built-in font.")
	analyzeCmd.PersistentFlags().Int("rate", 0, "Max detection requests per minute. 0 disables the limit.")
	analyzeCmd.PersistentFlags().Bool("notify", false, "Send a desktop notification when the run completes.")
}

func Analyze(cmd *cli.Command, args []string) {
	debugMode, _ = cmd.Flags().GetBool("debug")
	imagePaths, _ := cmd.Flags().GetStringArray("image")
	outputDir, _ := cmd.Flags().GetString("output")
	prefix, _ := cmd.Flags().GetString("prefix")
	fontFile, _ := cmd.Flags().GetString("font")
	rate, _ := cmd.Flags().GetInt("rate")
	notify, _ := cmd.Flags().GetBool("notify")

	serviceConfig, err := NewServiceEnvConfig()
	if err != nil {
		exitWithError(err)
	}
	serviceConfig.Print(os.Stdout)

	ctx := context.Background()
	detector, err := newDetector(ctx, serviceConfig)
	if err != nil {
		exitWithError(err)
	}
	detector = face.Limited(detector, rate)
	if !debugMode {
		detector = newSpinningDetector(detector, os.Stderr)
	}

	fontFace, fontName := annotate.ResolveFont(fontFile, annotate.DefaultFontSize)
	if debugMode {
		log.Printf("Using font %s for face tags\n", fontName)
	}

	annotator := &annotate.Annotator{
		Detector:  detector,
		Out:       os.Stdout,
		Font:      fontFace,
		OutputDir: outputDir,
		Prefix:    prefix,
	}
	summary, err := annotator.Run(ctx, imagePaths)
	if err != nil {
		exitWithError(err)
	}
	annotate.PrintSummary(os.Stdout, summary)

	if notify {
		if err := beeep.Notify("Face Annotator", fmt.Sprintf("%d images analysed", len(summary)), ""); err != nil {
			log.Println("WARN: Cannot send notification:", err)
		}
	}
}

// newDetector builds the client handle for the configured provider.
func newDetector(ctx context.Context, serviceConfig *ServiceConfig) (face.Detector, error) {
	switch serviceConfig.Provider {
	case providerRekognition:
		// Setup AWS -- https://pkg.go.dev/github.com/aws/aws-sdk-go-v2/service/rekognition
		awsNativeConfig, err := config.LoadDefaultConfig(ctx, config.WithRegion(serviceConfig.Region))
		if err != nil {
			return nil, fmt.Errorf("cannot load AWS config: %w", err)
		}
		return face.NewRekognitionDetector(rekognition.NewFromConfig(awsNativeConfig)), nil
	default:
		return face.NewAzureDetector(serviceConfig.Endpoint, serviceConfig.Key), nil
	}
}
