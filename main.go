package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ifoundaim/videogen-mcp/configs"
	"github.com/ifoundaim/videogen-mcp/videogen"
)

var (
	version = "1.0.0"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "videogen-mcp",
		Short:   "A video generation tool server with MCP support",
		Long:    `A server exposing a video generation tool over REST and MCP (Model Context Protocol).`,
		Version: version,
	}

	// Add subcommands
	rootCmd.AddCommand(newRunServerCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("Command execution failed: %v", err)
	}
}

// newRunServerCmd creates the runserver command
func newRunServerCmd() *cobra.Command {
	var port string
	var debug bool

	cmd := &cobra.Command{
		Use:   "runserver",
		Short: "Start the server",
		Long:  `Start the server with HTTP API and MCP support`,
		Run: func(cmd *cobra.Command, args []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}

			cfg := configs.Load()

			logrus.Infof("Starting server on port %s", port)

			// Create and start the server
			server, err := NewAppServer(cfg)
			if err != nil {
				logrus.Fatalf("Failed to configure server: %v", err)
			}
			if err := server.Start(":" + port); err != nil {
				logrus.Fatalf("Failed to start server: %v", err)
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to run the server on")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	return cmd
}

// newGenerateCmd creates the generate command
func newGenerateCmd() *cobra.Command {
	var prompt string
	var promptBase64 string
	var duration float64
	var aspectRatio string
	var style string
	var referenceImageURL string
	var debug bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a video from the command line",
		Long:  `Send one generation request to the configured provider and print the result.`,
		Run: func(cmd *cobra.Command, args []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}

			cfg := configs.Load()

			client, err := videogen.NewClient(videogen.Options{
				APIKey:   cfg.APIKey,
				Endpoint: cfg.APIEndpoint,
			})
			if err != nil {
				logrus.Fatalf("Client configuration failed: %v", err)
			}

			in := videogen.RawInput{
				Prompt:            prompt,
				PromptBase64:      promptBase64,
				AspectRatio:       aspectRatio,
				Style:             style,
				ReferenceImageURL: referenceImageURL,
			}
			if cmd.Flags().Changed("duration") {
				in.DurationSeconds = &duration
			}
			if err := ValidateInput(in); err != nil {
				logrus.Fatalf("Invalid input: %v", err)
			}

			ctx := context.Background()
			result, err := NewVideoService(client).GenerateVideo(ctx, in)
			if err != nil {
				logrus.Fatalf("Generation failed: %v", err)
			}

			// Print results
			fmt.Println("\n========================================")
			fmt.Println("  Video Generation Result")
			fmt.Println("========================================")
			fmt.Printf("Status:    %s\n", result.Status)
			if result.VideoURL != "" {
				fmt.Printf("Video URL: %s\n", result.VideoURL)
			}
			if result.PreviewImageURL != "" {
				fmt.Printf("Preview:   %s\n", result.PreviewImageURL)
			}
			if result.JobID != "" {
				fmt.Printf("Job ID:    %s\n", result.JobID)
			}
			fmt.Println("========================================")
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "Natural language prompt describing the video")
	cmd.Flags().StringVar(&promptBase64, "prompt-base64", "", "Base64-encoded prompt (takes precedence over --prompt)")
	cmd.Flags().Float64Var(&duration, "duration", videogen.DefaultDurationSeconds, "Clip length in seconds (1-8)")
	cmd.Flags().StringVar(&aspectRatio, "aspect-ratio", "", "Aspect ratio, e.g. 16:9")
	cmd.Flags().StringVar(&style, "style", "", "Optional style hint")
	cmd.Flags().StringVar(&referenceImageURL, "reference-image-url", "", "Optional reference image URL")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	return cmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("videogen-mcp version %s\n", version)
		},
	}
}
