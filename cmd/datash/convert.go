package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"datashell/internal/format"
	"datashell/internal/item"
	"datashell/internal/value"
)

var errNoInputFormat = errors.New("cannot detect the input format, use --from")

type convertOptions struct {
	from   string
	to     string
	output string
}

func newConvertCmd(a *app) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a file or stdin to another format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			out, err := a.convert(input, opts)
			if err != nil {
				return err
			}

			if opts.output != "" {
				a.logger.Info("writing output", zap.String("path", opts.output), zap.String("format", out.Format()))
				return out.SaveAs(item.OS(opts.output))
			}

			s := out.Value()
			if !strings.HasSuffix(s, "\n") {
				s += "\n"
			}

			_, err = io.WriteString(cmd.OutOrStdout(), s)

			return err
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "input format (default: from the file extension)")
	cmd.Flags().StringVar(&opts.to, "to", "", "output format")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (a *app) readInput(stdin io.Reader, args []string) (*value.Text, error) {
	if len(args) == 1 {
		return a.engine.Load(item.OS(args[0]))
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return a.engine.Text(string(content), ""), nil
}

func (a *app) convert(input *value.Text, opts *convertOptions) (*value.Text, error) {
	if opts.from != "" {
		input = input.WithFormat(opts.from)
	}

	if input.Format() == "" {
		return nil, errNoInputFormat
	}

	to := format.Resolve(opts.to)
	if !format.Known(to) {
		return nil, fmt.Errorf("unknown output format %q", opts.to)
	}

	a.logger.Info("converting", zap.String("from", input.Format()), zap.String("to", to))

	if input.Format() == format.HTML && to == format.Markdown {
		return input.Markdown()
	}

	data, err := input.Data()
	if err != nil {
		return nil, err
	}

	return data.As(to)
}
