package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/brickhop/ecs"
)

// EntityBrowser renders a filterable table of live entities and the
// component types they hold.
type EntityBrowser struct {
	storage    *ecs.Storage
	filterText string
}

// NewEntityBrowser creates the browser window for a storage.
func NewEntityBrowser(storage *ecs.Storage) *EntityBrowser {
	return &EntityBrowser{storage: storage}
}

// Spawn registers the window as an ImguiItem entity.
func (eb *EntityBrowser) Spawn(storage *ecs.Storage) {
	storage.Spawn(ImguiItem{Render: eb.Render})
}

// Render draws the window from the current storage contents.
func (eb *EntityBrowser) Render() {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	shown := 0
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		filter := strings.ToLower(eb.filterText)
		for _, id := range eb.storage.Entities() {
			types := eb.storage.ComponentTypes(id)
			names := make([]string, len(types))
			for i, t := range types {
				names[i] = t.String()
			}
			joined := strings.Join(names, ", ")

			if filter != "" {
				idStr := fmt.Sprintf("%d", id)
				if !strings.Contains(idStr, filter) &&
					!strings.Contains(strings.ToLower(joined), filter) {
					continue
				}
			}
			shown++

			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", id))
			imgui.TableNextColumn()
			imgui.Text(joined)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(types)))
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Total: %d entities", shown))
	imgui.End()
}
