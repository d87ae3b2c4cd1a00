package generator

import (
	"strconv"
	"strings"

	"github.com/bianoble/unity-assets/internal/spec"
	"github.com/bianoble/unity-assets/internal/unityyaml"
)

var csharpTypes = map[string]string{
	"int":         "int",
	"float":       "float",
	"double":      "double",
	"string":      "string",
	"bool":        "bool",
	"vector2":     "Vector2",
	"vector3":     "Vector3",
	"vector4":     "Vector4",
	"color":       "Color",
	"gameobject":  "GameObject",
	"transform":   "Transform",
	"sprite":      "Sprite",
	"texture":     "Texture2D",
	"audioclip":   "AudioClip",
	"animator":    "Animator",
	"rigidbody":   "Rigidbody",
	"rigidbody2d": "Rigidbody2D",
	"collider":    "Collider",
	"collider2d":  "Collider2D",
}

// EnumTypeName is the name of the enum synthesized for a field with values.
func EnumTypeName(f spec.Field) string {
	return PascalCase(f.Name) + "Type"
}

// CSharpType maps a field's declared type to a C# type name. Arrays ("T[]")
// and lists ("List<T>") map their element type.
func CSharpType(f spec.Field) string {
	if f.IsEnum() {
		return EnumTypeName(f)
	}
	return mapType(f.Type)
}

func mapType(t string) string {
	lower := strings.ToLower(t)
	if strings.HasSuffix(lower, "[]") {
		return elementType(strings.TrimSuffix(lower, "[]")) + "[]"
	}
	if strings.HasPrefix(lower, "list<") && strings.HasSuffix(lower, ">") {
		return "List<" + elementType(lower[len("list<"):len(lower)-1]) + ">"
	}
	if cs, ok := csharpTypes[lower]; ok {
		return cs
	}
	return t
}

func elementType(lower string) string {
	if cs, ok := csharpTypes[lower]; ok {
		return cs
	}
	return PascalCase(lower)
}

func isListType(t string) bool {
	lower := strings.ToLower(t)
	return strings.HasPrefix(lower, "list<")
}

// DefaultLiteral renders " = <literal>" for a field's default value, or ""
// when the field has no default or the value does not fit the type.
func DefaultLiteral(f spec.Field) string {
	if !f.HasDefault() {
		return ""
	}
	csType := CSharpType(f)

	switch v := f.Default.(type) {
	case string:
		if f.IsEnum() {
			return " = " + csType + "." + PascalCase(v)
		}
		return " = " + quote(v)
	case bool:
		return " = " + strconv.FormatBool(v)
	}

	if n, ok := unityyaml.FormatNumber(f.Default); ok {
		if csType == "float" {
			return " = " + n + "f"
		}
		return " = " + n
	}

	if nums, ok := unityyaml.NumericSequence(f.Default); ok {
		var arity int
		switch csType {
		case "Vector2":
			arity = 2
		case "Vector3":
			arity = 3
		case "Vector4", "Color":
			arity = 4
		default:
			return ""
		}
		args := make([]string, arity)
		for i := range args {
			n := "0"
			switch {
			case i < len(nums):
				n, _ = unityyaml.FormatNumber(nums[i])
			case csType == "Color":
				n = "1"
			}
			args[i] = n + "f"
		}
		return " = new " + csType + "(" + strings.Join(args, ", ") + ")"
	}
	return ""
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}

func fieldAttributes(f spec.Field) []string {
	var attrs []string
	if f.Space {
		attrs = append(attrs, "[Space]")
	}
	if f.Header != "" {
		attrs = append(attrs, "[Header("+quote(f.Header)+")]")
	}
	if f.Tooltip != "" {
		attrs = append(attrs, "[Tooltip("+quote(f.Tooltip)+")]")
	}
	if len(f.Range) == 2 {
		lo, _ := unityyaml.FormatNumber(f.Range[0])
		hi, _ := unityyaml.FormatNumber(f.Range[1])
		attrs = append(attrs, "[Range("+lo+"f, "+hi+"f)]")
	}
	return attrs
}

// classSource describes a type declaration to render.
type classSource struct {
	Name        string
	Namespace   string
	Description string
	ScriptType  string
	BaseClass   string
	Interfaces  []string
	Usings      []string
	Fields      []spec.Field
	Methods     []string
	Attributes  []string
}

// Script renders a C# source file.
func Script(def *spec.Script) string {
	return renderClass(classSource{
		Name:        PascalCase(def.Name),
		Namespace:   def.Namespace,
		Description: def.Description,
		ScriptType:  def.ScriptType,
		BaseClass:   def.BaseClass,
		Interfaces:  def.Interfaces,
		Usings:      def.Usings,
		Fields:      def.Fields,
		Methods:     def.Methods,
	})
}

func renderClass(c classSource) string {
	scriptType := c.ScriptType
	if scriptType == "" {
		scriptType = spec.ScriptMonoBehaviour
	}
	baseClass := c.BaseClass
	if baseClass == "" {
		baseClass = spec.ScriptMonoBehaviour
		if scriptType == spec.ScriptScriptableObject {
			baseClass = spec.ScriptScriptableObject
		}
	}

	w := newCodeWriter()
	for _, u := range usings(c) {
		w.linef("using %s;", u)
	}
	w.blank()

	if c.Namespace != "" {
		w.open("namespace %s", c.Namespace)
	}

	if c.Description != "" {
		w.line("/// <summary>")
		w.linef("/// %s", c.Description)
		w.line("/// </summary>")
	}
	for _, a := range c.Attributes {
		w.line(a)
	}

	switch scriptType {
	case spec.ScriptInterface:
		w.open("public interface %s%s", c.Name, inheritance(nil, c.Interfaces))
		writeInterfaceMembers(w, c.Fields)
	case spec.ScriptEnum:
		w.open("public enum %s", c.Name)
		writeEnumMembers(w, c.Fields)
	case spec.ScriptStatic:
		w.open("public static class %s", c.Name)
		writeEnums(w, c.Fields)
		writeStaticFields(w, c.Fields)
		writeMethods(w, c.Methods)
	default:
		w.open("public class %s%s", c.Name, inheritance([]string{baseClass}, c.Interfaces))
		writeEnums(w, c.Fields)
		writeFields(w, c.Fields)
		writeMethods(w, c.Methods)
	}
	w.close()

	if c.Namespace != "" {
		w.close()
	}
	return w.String()
}

func usings(c classSource) []string {
	list := []string{"UnityEngine"}
	for _, f := range c.Fields {
		if isListType(f.Type) {
			list = append(list, "System.Collections.Generic")
			break
		}
	}
	list = append(list, c.Usings...)

	seen := make(map[string]bool, len(list))
	out := list[:0]
	for _, u := range list {
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	return out
}

func inheritance(bases, interfaces []string) string {
	all := append(append([]string{}, bases...), interfaces...)
	if len(all) == 0 {
		return ""
	}
	return " : " + strings.Join(all, ", ")
}

func writeEnums(w *codeWriter, fields []spec.Field) {
	for _, f := range fields {
		if !f.IsEnum() {
			continue
		}
		w.open("public enum %s", EnumTypeName(f))
		for i, v := range f.Values {
			if i < len(f.Values)-1 {
				w.linef("%s,", PascalCase(v))
			} else {
				w.line(PascalCase(v))
			}
		}
		w.close()
		w.blank()
	}
}

func writeFields(w *codeWriter, fields []spec.Field) {
	w.line("#region Fields")
	for i, f := range fields {
		if i > 0 {
			w.blank()
		}
		for _, a := range fieldAttributes(f) {
			w.line(a)
		}
		w.linef("[SerializeField] private %s %s%s;", CSharpType(f), CamelCase(f.Name), DefaultLiteral(f))
	}
	w.line("#endregion")
	w.blank()

	w.line("#region Properties")
	for _, f := range fields {
		w.linef("public %s %s => %s;", CSharpType(f), PascalCase(f.Name), CamelCase(f.Name))
	}
	w.line("#endregion")
}

func writeStaticFields(w *codeWriter, fields []spec.Field) {
	for _, f := range fields {
		w.linef("public static %s %s%s;", CSharpType(f), PascalCase(f.Name), DefaultLiteral(f))
	}
}

func writeInterfaceMembers(w *codeWriter, fields []spec.Field) {
	for _, f := range fields {
		w.linef("%s %s { get; }", CSharpType(f), PascalCase(f.Name))
	}
}

// writeEnumMembers turns each field into an enum member. Integer defaults
// become explicit member values.
func writeEnumMembers(w *codeWriter, fields []spec.Field) {
	for i, f := range fields {
		member := PascalCase(f.Name)
		switch f.Default.(type) {
		case int, int64:
			n, _ := unityyaml.FormatNumber(f.Default)
			member += " = " + n
		}
		if i < len(fields)-1 {
			member += ","
		}
		w.line(member)
	}
}

func writeMethods(w *codeWriter, methods []string) {
	if len(methods) == 0 {
		return
	}
	w.blank()
	w.line("#region Methods")
	for i, m := range methods {
		if i > 0 {
			w.blank()
		}
		for _, l := range strings.Split(strings.TrimRight(m, "\n"), "\n") {
			w.line(l)
		}
	}
	w.line("#endregion")
}
