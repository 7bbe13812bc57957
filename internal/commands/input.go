package commands

import (
	"cmp"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moasq/painless/prompt"
)

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Ask for a single typed value",
	Long:  "Reads one value of --type, redrawing the line on parse errors and when the value is outside --min/--max.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrompter(func(p *prompt.Prompter) error {
			v, err := readScalar(p, inputPrompt, inputType, inputMin, inputMax)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout)
			fmt.Fprintln(stdout, v)
			return nil
		})
	},
}

var errBoundsOnBool = errors.New("--min and --max do not apply to bool")

var (
	inputPrompt string
	inputType   string
	inputMin    string
	inputMax    string
)

func init() {
	inputCmd.Flags().StringVarP(&inputPrompt, "prompt", "p", "Enter a value: ", "Prompt text")
	inputCmd.Flags().StringVarP(&inputType, "type", "t", "string", "Value type: int, uint, float, string, bool, duration")
	inputCmd.Flags().StringVar(&inputMin, "min", "", "Reject values below this")
	inputCmd.Flags().StringVar(&inputMax, "max", "", "Reject values above this")
}

// readScalar dispatches on the --type name.
func readScalar(p *prompt.Prompter, msg, typ, lo, hi string) (any, error) {
	switch typ {
	case "int":
		return scalar[int64](p, msg, lo, hi)
	case "uint":
		return scalar[uint64](p, msg, lo, hi)
	case "float":
		return scalar[float64](p, msg, lo, hi)
	case "string":
		return scalar[string](p, msg, lo, hi)
	case "duration":
		return scalar[time.Duration](p, msg, lo, hi)
	case "bool":
		if lo != "" || hi != "" {
			return nil, errBoundsOnBool
		}
		return prompt.Input[bool](p, msg)
	default:
		return nil, fmt.Errorf("unknown type %q", typ)
	}
}

func scalar[T cmp.Ordered](p *prompt.Prompter, msg, lo, hi string) (any, error) {
	v, err := between[T](lo, hi)
	if err != nil {
		return nil, err
	}
	return prompt.InputWithValidation[T](p, msg, v)
}

// between builds a validator accepting values in [lo, hi]. Either bound may
// be empty. With both empty it returns nil, which accepts everything.
func between[T cmp.Ordered](lo, hi string) (prompt.Validator[T], error) {
	if lo == "" && hi == "" {
		return nil, nil
	}
	var minV, maxV *T
	if lo != "" {
		v, err := prompt.ParseText[T](lo)
		if err != nil {
			return nil, fmt.Errorf("invalid --min: %w", err)
		}
		minV = &v
	}
	if hi != "" {
		v, err := prompt.ParseText[T](hi)
		if err != nil {
			return nil, fmt.Errorf("invalid --max: %w", err)
		}
		maxV = &v
	}
	return prompt.ValidatorFunc[T](func(v T) error {
		if minV != nil && v < *minV {
			return fmt.Errorf("Please enter a value of at least %v", *minV)
		}
		if maxV != nil && v > *maxV {
			return fmt.Errorf("Please enter a value no greater than %v", *maxV)
		}
		return nil
	}), nil
}
