package syntax

import "gopkg.in/yaml.v3"

// DumpNode is a YAML-friendly snapshot of one tree node, used for golden
// tests and the CLI's `--format=yaml` output.
type DumpNode struct {
	Kind     string     `yaml:"kind"`
	Range    [2]int     `yaml:"range"`
	Text     string     `yaml:"text,omitempty"`
	Children []DumpNode `yaml:"children,omitempty"`
}

// Dump converts a node view into its YAML-friendly snapshot. Leaves
// carry their text; inner nodes carry only their children, matching how
// Node itself distinguishes the two.
func Dump(v *View) DumpNode {
	d := DumpNode{
		Kind:  v.Kind().String(),
		Range: [2]int{int(v.Range().Start), int(v.Range().End)},
	}
	if v.IsLeaf() {
		d.Text = v.Text()
		return d
	}
	for _, c := range v.Children() {
		d.Children = append(d.Children, Dump(c))
	}
	return d
}

// DumpYAML renders a tree snapshot to YAML text.
func DumpYAML(v *View) (string, error) {
	out, err := yaml.Marshal(Dump(v))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DumpSymbolsYAML renders a symbol table to YAML text.
func DumpSymbolsYAML(symbols []Symbol) (string, error) {
	out, err := yaml.Marshal(symbols)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DumpDiagnosticsYAML renders a diagnostic list to YAML text.
func DumpDiagnosticsYAML(diags []Diagnostic) (string, error) {
	out, err := yaml.Marshal(diags)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
