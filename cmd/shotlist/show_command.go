package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/shotlist/internal/model"
)

func newShowCommand(cc *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a project's shot list as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := loadProject(args[0])
			if err != nil {
				return err
			}

			headers := []string{"Shot", "Scene", "Size", "Type", "Move", "Equip", "Camera", "Lens", "Done"}
			var rows [][]string
			for _, sc := range project.Scenes {
				for i, shot := range sc.Shots {
					done := ""
					if shot.Checked {
						done = "x"
					}
					rows = append(rows, []string{
						model.DisplayID(sc.SceneLabel, i),
						sc.SceneLabel,
						shot.Specs.Size,
						shot.Specs.Type,
						shot.Specs.Move,
						shot.Specs.Equip,
						shot.CameraName,
						shot.FocalLength,
						done,
					})
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, []int{0}))
			fmt.Fprintf(cmd.OutOrStdout(), "%d scene(s), %d shot(s), script time %s\n",
				len(project.Scenes),
				project.ShotCount(),
				totalScriptTime(project))
			return nil
		},
	}

	return cmd
}

func totalScriptTime(p *model.Project) string {
	var all []model.Shot
	for _, sc := range p.Scenes {
		all = append(all, sc.Shots...)
	}
	return model.FormatScriptTime(model.TotalScriptTime(all))
}
