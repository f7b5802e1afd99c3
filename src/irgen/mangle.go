package irgen

// mangle returns the external symbol used for a call (GLOSSARY,
// "Mangled name"): "package.name_function.name".
func mangle(pkg, name string) string {
	return pkg + "_" + name
}
