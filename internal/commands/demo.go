package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/painless/prompt"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through every prompt kind",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrompter(runDemo)
	},
}

var demoOptions = []string{
	"Option 1", "Option 2", "Option 3", "Option 4", "Option 5",
	"Option 6", "Option 7", "Option 8", "Option 9", "Option 10",
}

func runDemo(p *prompt.Prompter) error {
	Header("Input")
	Info("Type a value, Backspace to edit, Enter to confirm")
	n, err := prompt.Input[uint8](p, "Enter a number: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	Detail("number", fmt.Sprint(n))

	small, err := prompt.InputWithValidation(p, "Enter a number: ", prompt.ValidatorFunc[uint8](func(v uint8) error {
		if v > 10 {
			return errors.New("Please enter a number less than 10")
		}
		return nil
	}))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	Detail("validated", fmt.Sprint(small))

	Header("Arrays")
	Info("Enter confirms each element, Enter on an empty element closes the list")
	arr, err := prompt.InputArray[uint8](p, "Enter 3 numbers: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	Detail("numbers", formatList(arr))

	three, err := prompt.InputArrayWithValidation(p, "Enter 3 numbers: ", prompt.ValidatorFunc[[]uint8](func(v []uint8) error {
		if len(v) != 3 {
			return errors.New("Please enter 3 numbers")
		}
		return nil
	}))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	Detail("validated", formatList(three))

	Header("Select")
	Info("Up/Down to move, Enter to confirm")
	i, err := prompt.Select(p, "Select an option: ", demoOptions)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	Detail("selected", fmt.Sprintf("%d (%s)", i, demoOptions[i]))

	Header("Multi-select")
	Info("Up/Down to move, Enter to toggle or submit")
	checked, err := p.MultiSelect("Select an option: ", "Done", demoOptions)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	Detail("selected", fmt.Sprint(checked))

	Success("Demo complete")
	return nil
}
