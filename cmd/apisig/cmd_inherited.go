package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msft-mirror-aosp/platform.tools.metalava-sub008/model"
)

func newInheritedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inherited <codebase.json> <class>",
		Short: "Show the members a class inherits from its hidden ancestors",
		Long: `Walks the super-class chain of the given class and, for every
ancestor outside the emitted packages, materializes the methods the
class inherits from it, with type variables substituted into the
class's own frame.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cb, err := decodeCodebaseFile(args[0])
			if err != nil {
				return err
			}
			cls := cb.FindClass(args[1])
			if cls == nil {
				return fmt.Errorf("class %s not found", args[1])
			}

			count := 0
			seen := make(map[string]bool)
			for ancestor := cls.SuperClass(); ancestor != nil; ancestor = ancestor.SuperClass() {
				if ancestor.Package().Emit() {
					continue
				}
				for _, m := range ancestor.Methods() {
					if m.IsStatic() || m.Visibility() == model.VisibilityPrivate {
						continue
					}
					if cls.FindMethod(m.Name(), m.ParameterErasure()) != nil || seen[m.ErasedSignature()] {
						continue
					}
					seen[m.ErasedSignature()] = true
					inherited, err := cls.InheritMethodFromNonApiAncestor(m)
					if err != nil {
						return err
					}
					fmt.Printf("%s\tfrom %s\n", inherited, inherited.InheritedFrom().QualifiedName())
					count++
				}
			}
			if count == 0 {
				fmt.Printf("%s inherits nothing from hidden ancestors\n", cls.QualifiedName())
			}
			return nil
		},
	}

	return cmd
}
