// Package render prints tags, requirements and build info for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"

	"bddreport/internal/buildinfo"
	"bddreport/internal/model"
)

// Styles groups the styles used by the renderers.
type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Type   lipgloss.Style
	Dim    lipgloss.Style
	Border lipgloss.Style
}

// NewStyles returns coloured styles, or plain ones when noColor is set.
func NewStyles(noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{Header: plain, Label: plain, Type: plain, Dim: plain, Border: plain}
	}
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Type:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func newTable(styles Styles, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header.Padding(0, 1)
			}
			if col == 0 {
				return styles.Label.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

// BuildInfo prints the general properties and each driver's capabilities.
func BuildInfo(w io.Writer, props buildinfo.BuildProperties, styles Styles) {
	general := newTable(styles, "Property", "Value")
	for _, property := range props.General {
		general.Row(property.Label, property.Value)
	}
	fmt.Fprintln(w, general.String())

	for _, driver := range props.Drivers {
		capabilities := props.DriverCapabilities[driver]
		fmt.Fprintf(w, "\n%s\n", styles.Header.Render("Driver: "+driver))
		caps := newTable(styles, "Capability", "Value")
		for _, key := range capabilities.Keys() {
			caps.Row(key, capabilities[key])
		}
		fmt.Fprintln(w, caps.String())
	}
}

// Tags prints the tags derived for one path.
func Tags(w io.Writer, title string, tags *model.TagSet, styles Styles) {
	fmt.Fprintln(w, styles.Header.Render(title))
	if tags.Len() == 0 {
		fmt.Fprintln(w, styles.Dim.Render("  (no tags)"))
		return
	}
	out := newTable(styles, "Type", "Name")
	for _, tag := range tags.Slice() {
		out.Row(tag.Type, tag.Name)
	}
	fmt.Fprintln(w, out.String())
}

// Requirements prints the requirement tree with narrative titles.
func Requirements(w io.Writer, roots []*model.Requirement, styles Styles) {
	if len(roots) == 0 {
		fmt.Fprintln(w, styles.Dim.Render("(no requirements found)"))
		return
	}
	root := tree.New().
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styles.Border)
	for _, requirement := range roots {
		root.Child(requirementNode(requirement, styles))
	}
	fmt.Fprintln(w, root.String())
}

func requirementNode(requirement *model.Requirement, styles Styles) any {
	label := requirementLabel(requirement, styles)
	if len(requirement.Children) == 0 {
		return label
	}
	node := tree.Root(label)
	for _, child := range requirement.Children {
		node.Child(requirementNode(child, styles))
	}
	return node
}

func requirementLabel(requirement *model.Requirement, styles Styles) string {
	label := styles.Type.Render("["+requirement.Type+"]") + " " + requirement.Name
	if requirement.Narrative != nil && requirement.Narrative.Title != "" && requirement.Narrative.Title != requirement.Name {
		label += " " + styles.Dim.Render("("+requirement.Narrative.Title+")")
	}
	return label
}

// Narrative prints a narrative title and text.
func Narrative(w io.Writer, narrative *model.Narrative, styles Styles) {
	if narrative.Title != "" {
		fmt.Fprintln(w, styles.Header.Render(narrative.Title))
	}
	meta := make([]string, 0, 2)
	if narrative.Type != "" {
		meta = append(meta, "type: "+narrative.Type)
	}
	if narrative.CardNumber != "" {
		meta = append(meta, "issue: "+narrative.CardNumber)
	}
	if len(meta) > 0 {
		fmt.Fprintln(w, styles.Dim.Render(strings.Join(meta, ", ")))
	}
	if narrative.Text != "" {
		fmt.Fprintln(w, narrative.Text)
	}
}
