package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/painless/prompt"
)

var multiSelectCmd = &cobra.Command{
	Use:   "multiselect OPTION...",
	Short: "Check any number of the given options",
	Long: `Lists every option with a checkbox and a submit line below them.
Up and Down move (wrapping around), Enter toggles an option or submits.
The checked options are printed one per line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrompter(func(p *prompt.Prompter) error {
			checked, err := p.MultiSelect(multiSelectPrompt, multiSelectSubmit, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout)
			for i, on := range checked {
				if on {
					fmt.Fprintln(stdout, args[i])
				}
			}
			return nil
		})
	},
}

var (
	multiSelectPrompt string
	multiSelectSubmit string
)

func init() {
	multiSelectCmd.Flags().StringVarP(&multiSelectPrompt, "prompt", "p", "Select options: ", "Prompt text")
	multiSelectCmd.Flags().StringVar(&multiSelectSubmit, "submit", "Done", "Label of the submit line")
}
