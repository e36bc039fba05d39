package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/duckgo/pkg/duckgo"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk to the duckchat AI",
	Long: `Talk to the duckchat AI. With a message argument the reply is
streamed to stdout and the command exits. Without one an interactive
loop reads prompts from stdin; conversation history carries across
turns. End the session with ctrl-d or an empty line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			logError("%v", err)
			return err
		}

		model, _ := cmd.Flags().GetString("model")
		opts := duckgo.ChatOptions{Model: duckgo.Model(model)}

		if system, _ := cmd.Flags().GetString("system"); system != "" {
			client.SeedChat(duckgo.ChatMessage{Role: duckgo.RoleUser, Content: system})
		}

		if len(args) > 0 {
			return chatTurn(cmd, client, strings.Join(args, " "), opts)
		}

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Fprint(os.Stderr, "> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			prompt := strings.TrimSpace(scanner.Text())
			if prompt == "" {
				return nil
			}
			if err := chatTurn(cmd, client, prompt, opts); err != nil {
				if errors.Is(err, duckgo.ErrConversationLimit) {
					logError("conversation limit reached")
					return err
				}
				logError("%v", err)
				return err
			}
		}
	},
}

// chatTurn streams one reply to stdout as fragments arrive.
func chatTurn(cmd *cobra.Command, client *duckgo.Client, prompt string, opts duckgo.ChatOptions) error {
	stream, err := client.ChatStream(cmd.Context(), prompt, opts)
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		fragment, err := stream.Recv()
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Print(fragment)
	}
}

func init() {
	chatCmd.Flags().StringP("model", "m", string(duckgo.DefaultModel),
		"chat model: gpt-4o-mini, llama-3.3-70b, claude-3-haiku, o3-mini, mistral-small-3")
	chatCmd.Flags().String("system", "", "priming message prepended to the conversation")

	rootCmd.AddCommand(chatCmd)
}
