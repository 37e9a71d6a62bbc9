package theme

import "strings"

// BaseStylesheet is the variable-free CSS template bundled with every base
// family document.
const BaseStylesheet = `@tailwind base;
@tailwind components;
@tailwind utilities;
`

// VariableBlock renders an ordered variable list into one CSS rule.
func VariableBlock(selector string, vars []Variable) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, v := range vars {
		b.WriteString("    --")
		b.WriteString(v.Name)
		b.WriteString(": ")
		b.WriteString(v.Value)
		b.WriteString(";\n")
	}
	b.WriteString("  }")
	return b.String()
}

// VariableStylesheet renders the CSS template carrying the full :root/.dark
// variable block for one resolved base family.
func VariableStylesheet(light, dark []Variable) string {
	var b strings.Builder
	b.WriteString(BaseStylesheet)
	b.WriteString("\n@layer base {\n  ")
	b.WriteString(VariableBlock(":root", light))
	b.WriteString("\n\n  ")
	b.WriteString(VariableBlock(".dark", dark))
	b.WriteString("\n}\n")
	b.WriteString(`
@layer base {
  * {
    @apply border-border;
  }
  body {
    @apply bg-background text-foreground;
  }
}
`)
	return b.String()
}
