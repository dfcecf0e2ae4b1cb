// The MIT License (MIT)
//
// Copyright (c) 2020 The typelev Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/typelev/infer"
	"github.com/typelev/infer/parser"
	"github.com/typelev/infer/types"
	"github.com/typelev/infer/universe"
)

var (
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:          "mli",
	Short:        "mli infers the principal type of an ML expression read from stdin",
	Args:         cobra.NoArgs,
	RunE:         runOnce,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "YAML file of extra primitives (name: scheme)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.AddCommand(replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newContext() *infer.InferenceContext {
	ctx := infer.NewContext()
	if verbose {
		ctx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	return ctx
}

// buildEnv starts from the universe of built-in primitives and layers any
// extra schemes from --env on top.
func buildEnv() (*infer.TypeEnv, error) {
	env, err := universe.New()
	if err != nil {
		return nil, err
	}
	if envFile == "" {
		return env, nil
	}

	data, err := os.ReadFile(envFile)
	if err != nil {
		return nil, errors.Wrap(err, "could not read env file")
	}
	extras := make(map[string]string)
	if err := yaml.Unmarshal(data, &extras); err != nil {
		return nil, errors.Wrap(err, "could not parse env file")
	}
	names := make([]string, 0, len(extras))
	for name := range extras {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t, err := parser.ParseScheme(extras[name])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid scheme for %s", name)
		}
		env.Declare(name, t)
	}
	return env, nil
}

// inferLine parses a single expression and returns its printed principal type.
func inferLine(ctx *infer.InferenceContext, env *infer.TypeEnv, line string) (string, error) {
	expr, err := parser.ParseExpr(line)
	if err != nil {
		return "", err
	}
	t, err := ctx.Infer(expr, env)
	if err != nil {
		return "", err
	}
	return types.TypeString(t), nil
}

func runOnce(cmd *cobra.Command, args []string) error {
	env, err := buildEnv()
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return errors.Wrap(err, "could not read input")
		}
		return errors.New("no input")
	}
	out, err := inferLine(newContext(), env, scanner.Text())
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
