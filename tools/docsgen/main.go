// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen writes a markdown page for each netdiff command, built from the
// live command tree so flags, defaults and env vars never drift.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/netdiff/internal/command"
	"github.com/tfctl/netdiff/internal/meta"
	"github.com/tfctl/netdiff/internal/version"
)

const pageTemplate = `# netdiff {{.Name}}

{{.Usage}}

## Usage

    {{.UsageText}}

## Flags

| Flag | Description | Environment |
|------|-------------|-------------|
{{- range .Flags}}
| ` + "`{{.Syntax}}`" + ` | {{.Description}} | {{.Env}} |
{{- end}}

_Generated {{.Date}} for netdiff {{.Version}}._
`

type Flag struct {
	Syntax      string
	Description string
	Env         string
}

type TemplateData struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []Flag
	Date      string
	Version   string
}

func main() {
	folder := "docs/commands"
	if len(os.Args) > 1 {
		folder = os.Args[1]
	}

	if err := generate(folder, command.NewApp(meta.Meta{}), time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generate renders one page per subcommand of app into folder.
func generate(folder string, app *cli.Command, now time.Time) error {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return err
	}

	for _, sub := range app.Commands {
		data := TemplateData{
			Name:      sub.Name,
			Usage:     sub.Usage,
			UsageText: sub.UsageText,
			Flags:     flags(sub),
			Date:      now.Format("January 2, 2006"),
			Version:   version.Version,
		}

		path := filepath.Join(folder, sub.Name+".md")
		fmt.Println("Generating", path)
		if err := render(tmpl, path, data); err != nil {
			return err
		}
	}
	return nil
}

func render(tmpl *template.Template, path string, data TemplateData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return tmpl.Execute(file, data)
}

// flags describes the flags of cmd in their help order.
func flags(cmd *cli.Command) []Flag {
	var out []Flag
	for _, f := range cmd.Flags {
		var names []string
		for _, n := range f.Names() {
			if len(n) == 1 {
				names = append(names, "-"+n)
			} else {
				names = append(names, "--"+n)
			}
		}

		flag := Flag{Syntax: strings.Join(names, ", ")}
		if u, ok := f.(interface{ GetUsage() string }); ok {
			flag.Description = u.GetUsage()
		}
		if e, ok := f.(interface{ GetEnvVars() []string }); ok {
			flag.Env = strings.Join(e.GetEnvVars(), ", ")
		}
		out = append(out, flag)
	}
	return out
}
