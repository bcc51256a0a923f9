package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nfrund/lifeheroes/internal/forms"
)

var errInvalidInput = errors.New("input is invalid")

func newValidateCmd() *cobra.Command {
	var pairs []string

	cmd := &cobra.Command{
		Use:   "validate <login|signup>",
		Short: "Validate field values the way the site does",
		Long: `Runs the validation of the login or signup form and prints the message
each invalid field would show. Fields are given as name=value pairs; checkboxes
take true or false.

  heroes-cli validate login -f email=hero@example.com -f password=secret123`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := forms.ParseKind(args[0])
			if err != nil {
				return err
			}
			values, err := parsePairs(pairs)
			if err != nil {
				return err
			}
			fields, err := parseFields(kind, values)
			if err != nil {
				return err
			}

			errs := forms.Validate(kind, fields)
			out := cmd.OutOrStdout()
			if len(errs) == 0 {
				fmt.Fprintln(out, "valid")
				return nil
			}

			names := make([]string, 0, len(errs))
			for name := range errs {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "%s: %s\n", name, errs[name])
			}
			return errInvalidInput
		},
	}
	cmd.Flags().StringArrayVarP(&pairs, "field", "f", nil, "field value as name=value (repeatable)")
	return cmd
}

// parsePairs splits each name=value on the first "="; values may contain commas
// and further "=" signs.
func parsePairs(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("field %q must be formatted as name=value", pair)
		}
		values[name] = value
	}
	return values, nil
}

// parseFields starts from the empty form and applies the given values.
func parseFields(kind forms.Kind, values map[string]string) (forms.Fields, error) {
	fields := forms.EmptyFields(kind)
	for name, raw := range values {
		spec, ok := kind.Spec(name)
		if !ok {
			return nil, fmt.Errorf("form %s has no field %q", kind, name)
		}
		if spec.Type != forms.TypeCheckbox {
			fields[name] = forms.Text(raw)
			continue
		}
		checked, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		fields[name] = forms.Checked(checked)
	}
	return fields, nil
}
