package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/duckgo/internal/output"
	"github.com/jmylchreest/duckgo/pkg/duckgo"
)

var textCmd = &cobra.Command{
	Use:   "text <keywords>",
	Short: "Search the web for text results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			logError("%v", err)
			return err
		}

		opts := duckgo.TextOptions{}
		opts.Region, _ = cmd.Flags().GetString("region")
		opts.SafeSearch, _ = cmd.Flags().GetString("safesearch")
		opts.TimeLimit, _ = cmd.Flags().GetString("timelimit")
		opts.Backend, _ = cmd.Flags().GetString("backend")
		opts.MaxResults, _ = cmd.Flags().GetInt("max-results")

		results, err := client.Text(cmd.Context(), strings.Join(args, " "), opts)
		if err != nil {
			logError("%v", err)
			return err
		}
		return writeResults(cmd, output.Results(results))
	},
}

var imagesCmd = &cobra.Command{
	Use:   "images <keywords>",
	Short: "Search for images",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			logError("%v", err)
			return err
		}

		opts := duckgo.ImageOptions{}
		opts.Region, _ = cmd.Flags().GetString("region")
		opts.SafeSearch, _ = cmd.Flags().GetString("safesearch")
		opts.TimeLimit, _ = cmd.Flags().GetString("timelimit")
		opts.Size, _ = cmd.Flags().GetString("size")
		opts.Color, _ = cmd.Flags().GetString("color")
		opts.Type, _ = cmd.Flags().GetString("type")
		opts.Layout, _ = cmd.Flags().GetString("layout")
		opts.License, _ = cmd.Flags().GetString("license")
		opts.MaxResults, _ = cmd.Flags().GetInt("max-results")

		results, err := client.Images(cmd.Context(), strings.Join(args, " "), opts)
		if err != nil {
			logError("%v", err)
			return err
		}
		return writeResults(cmd, output.Results(results))
	},
}

var videosCmd = &cobra.Command{
	Use:   "videos <keywords>",
	Short: "Search for videos",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			logError("%v", err)
			return err
		}

		opts := duckgo.VideoOptions{}
		opts.Region, _ = cmd.Flags().GetString("region")
		opts.SafeSearch, _ = cmd.Flags().GetString("safesearch")
		opts.TimeLimit, _ = cmd.Flags().GetString("timelimit")
		opts.Resolution, _ = cmd.Flags().GetString("resolution")
		opts.Duration, _ = cmd.Flags().GetString("duration")
		opts.License, _ = cmd.Flags().GetString("license")
		opts.MaxResults, _ = cmd.Flags().GetInt("max-results")

		results, err := client.Videos(cmd.Context(), strings.Join(args, " "), opts)
		if err != nil {
			logError("%v", err)
			return err
		}
		return writeResults(cmd, output.Results(results))
	},
}

var newsCmd = &cobra.Command{
	Use:   "news <keywords>",
	Short: "Search for news articles",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			logError("%v", err)
			return err
		}

		opts := duckgo.NewsOptions{}
		opts.Region, _ = cmd.Flags().GetString("region")
		opts.SafeSearch, _ = cmd.Flags().GetString("safesearch")
		opts.TimeLimit, _ = cmd.Flags().GetString("timelimit")
		opts.MaxResults, _ = cmd.Flags().GetInt("max-results")

		results, err := client.News(cmd.Context(), strings.Join(args, " "), opts)
		if err != nil {
			logError("%v", err)
			return err
		}
		return writeResults(cmd, output.Results(results))
	},
}

// addSearchFlags registers the flags every search command shares.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("region", "r", "wt-wt", "region code, e.g. wt-wt, us-en, uk-en")
	cmd.Flags().StringP("safesearch", "s", "moderate", "safesearch level: on, moderate, off")
	cmd.Flags().IntP("max-results", "n", 0, "max results to collect (0 = first page only)")
	addOutputFlags(cmd)
}

func init() {
	addSearchFlags(textCmd)
	textCmd.Flags().StringP("timelimit", "t", "", "result age: d, w, m, y")
	textCmd.Flags().StringP("backend", "b", "auto", "backend: auto, html, lite")

	addSearchFlags(imagesCmd)
	imagesCmd.Flags().StringP("timelimit", "t", "", "result age: Day, Week, Month, Year")
	imagesCmd.Flags().String("size", "", "image size: Small, Medium, Large, Wallpaper")
	imagesCmd.Flags().String("color", "", "image color, e.g. color, Monochrome, Red")
	imagesCmd.Flags().String("type", "", "image type: photo, clipart, gif, transparent, line")
	imagesCmd.Flags().String("layout", "", "image layout: Square, Tall, Wide")
	imagesCmd.Flags().String("license", "", "image license, e.g. any, Public, Share")

	addSearchFlags(videosCmd)
	videosCmd.Flags().StringP("timelimit", "t", "", "result age: d, w, m")
	videosCmd.Flags().String("resolution", "", "video resolution: high, standard")
	videosCmd.Flags().String("duration", "", "video duration: short, medium, long")
	videosCmd.Flags().String("license", "", "video license: creativeCommon, youtube")

	addSearchFlags(newsCmd)
	newsCmd.Flags().StringP("timelimit", "t", "", "result age: d, w, m")

	rootCmd.AddCommand(textCmd, imagesCmd, videosCmd, newsCmd)
}
