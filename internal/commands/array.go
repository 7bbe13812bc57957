package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moasq/painless/prompt"
)

var arrayCmd = &cobra.Command{
	Use:   "array",
	Short: "Ask for a comma separated list of typed values",
	Long: `Reads values of --type one at a time. Enter confirms an element, Enter on
an empty element closes the list. With --count the list must have exactly that
many elements or it is cleared and asked for again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrompter(func(p *prompt.Prompter) error {
			out, err := readArray(p, arrayPrompt, arrayType, arrayCount)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout)
			fmt.Fprintln(stdout, out)
			return nil
		})
	},
}

var (
	arrayPrompt string
	arrayType   string
	arrayCount  int
)

func init() {
	arrayCmd.Flags().StringVarP(&arrayPrompt, "prompt", "p", "Enter values: ", "Prompt text")
	arrayCmd.Flags().StringVarP(&arrayType, "type", "t", "string", "Element type: int, uint, float, string, bool, duration")
	arrayCmd.Flags().IntVarP(&arrayCount, "count", "n", 0, "Require exactly this many elements (0 accepts any)")
}

// readArray dispatches on the --type name and returns the list formatted as
// it was drawn.
func readArray(p *prompt.Prompter, msg, typ string, count int) (string, error) {
	switch typ {
	case "int":
		return list[int64](p, msg, count)
	case "uint":
		return list[uint64](p, msg, count)
	case "float":
		return list[float64](p, msg, count)
	case "string":
		return list[string](p, msg, count)
	case "bool":
		return list[bool](p, msg, count)
	case "duration":
		return list[time.Duration](p, msg, count)
	default:
		return "", fmt.Errorf("unknown type %q", typ)
	}
}

func list[T any](p *prompt.Prompter, msg string, count int) (string, error) {
	values, err := prompt.InputArrayWithValidation[T](p, msg, exactly[T](count))
	if err != nil {
		return "", err
	}
	return formatList(values), nil
}

// exactly requires n elements; n <= 0 accepts any length.
func exactly[T any](n int) prompt.Validator[[]T] {
	if n <= 0 {
		return nil
	}
	return prompt.ValidatorFunc[[]T](func(values []T) error {
		if len(values) != n {
			return fmt.Errorf("Please enter %d values", n)
		}
		return nil
	})
}

func formatList[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
