package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/painless/prompt"
)

var selectCmd = &cobra.Command{
	Use:   "select OPTION...",
	Short: "Pick one of the given options",
	Long:  "Shows one option at a time. Up and Down move between options, Enter picks the one shown.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrompter(func(p *prompt.Prompter) error {
			i, err := prompt.Select(p, selectPrompt, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout)
			if selectIndex {
				fmt.Fprintln(stdout, i)
			} else {
				fmt.Fprintln(stdout, args[i])
			}
			return nil
		})
	},
}

var (
	selectPrompt string
	selectIndex  bool
)

func init() {
	selectCmd.Flags().StringVarP(&selectPrompt, "prompt", "p", "Select an option: ", "Prompt text")
	selectCmd.Flags().BoolVar(&selectIndex, "index", false, "Print the zero-based index instead of the option")
}
