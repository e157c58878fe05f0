package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msft-mirror-aosp/platform.tools.metalava-sub008/model"
)

func newClassesCmd() *cobra.Command {
	var showAll bool
	var showInterfaces bool

	cmd := &cobra.Command{
		Use:   "classes <codebase.json>",
		Short: "List the classes of a codebase model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cb, err := decodeCodebaseFile(args[0])
			if err != nil {
				return err
			}

			classes := append([]*model.ClassItem(nil), cb.AllClasses()...)
			sort.Slice(classes, func(i, j int) bool {
				return classes[i].QualifiedName() < classes[j].QualifiedName()
			})
			for _, cls := range classes {
				if !showAll && !cls.Package().Emit() {
					continue
				}
				fmt.Printf("%s\t%s\t%d ctors\t%d methods\t%d fields\n",
					cls.Kind(),
					classDisplayName(cls),
					len(cls.Constructors()),
					len(cls.Methods()),
					len(cls.Fields()),
				)
				if showInterfaces {
					for _, iface := range cls.AllInterfaces() {
						fmt.Printf("\timplements %s\n", iface.QualifiedName())
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "include classes outside the emitted packages")
	cmd.Flags().BoolVarP(&showInterfaces, "interfaces", "i", false, "show the transitive interfaces of each class")

	return cmd
}

func classDisplayName(cls *model.ClassItem) string {
	params := cls.TypeParameters()
	if len(params) == 0 {
		return cls.QualifiedName()
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return cls.QualifiedName() + "<" + strings.Join(names, ", ") + ">"
}
