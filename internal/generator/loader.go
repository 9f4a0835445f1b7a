package generator

import (
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"github.com/mangohow/mangokit/tools/collection"
	"github.com/mangohow/mangokit/tools/stream"
	"github.com/mangohow/specification/internal/errors"
	"github.com/mangohow/specification/internal/utils/stringutils"
	"github.com/mangohow/specification/schema"
	"golang.org/x/tools/go/packages"
)

// Model is the result of loading a model package.
type Model struct {
	Package  string
	Entities []schema.Entity
}

// Load type checks the packages matched by pattern, resolved from dir, and
// collects every exported struct with at least one field tagged with
// tagName. Entities keep their declaration order.
func Load(dir, pattern, tagName string) (*Model, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles |
			packages.NeedSyntax | packages.NeedTypes,
		Fset: token.NewFileSet(),
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", pattern)
	}
	if len(pkgs) == 0 {
		return nil, errors.Errorf("no package matches %s", pattern)
	}

	var (
		model = &Model{Package: pkgs[0].Name}
		names = collection.NewSet[string]()
	)
	for _, pkg := range pkgs {
		if len(pkg.Errors) != 0 {
			return nil, errors.Wrapf(pkg.Errors[0], "load package %s", pkg.PkgPath)
		}

		for _, typeSpec := range typeSpecs(pkg.Syntax) {
			entity, ok := collectEntity(pkg.Types.Scope().Lookup(typeSpec.Name.Name), tagName)
			if !ok {
				continue
			}
			if names.Has(entity.Name) {
				return nil, errors.Wrapf(schema.ErrDuplicateEntity, "%s declared again in %s", entity.Name, pkg.PkgPath)
			}
			names.Add(entity.Name)
			model.Entities = append(model.Entities, entity)
		}
	}

	return model, nil
}

// typeSpecs lists the non generic type declarations of files in source order.
func typeSpecs(files []*ast.File) []*ast.TypeSpec {
	var specs []*ast.TypeSpec
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				if typeSpec, ok := spec.(*ast.TypeSpec); ok {
					specs = append(specs, typeSpec)
				}
			}
		}
	}

	return stream.Filter(specs, func(spec *ast.TypeSpec) bool {
		return spec.TypeParams == nil && spec.Assign == 0 && stringutils.IsUpperLetter(spec.Name.Name)
	})
}

func collectEntity(obj types.Object, tagName string) (schema.Entity, bool) {
	typeName, ok := obj.(*types.TypeName)
	if !ok {
		return schema.Entity{}, false
	}
	st, ok := typeName.Type().Underlying().(*types.Struct)
	if !ok {
		return schema.Entity{}, false
	}

	fields, tagged := collectFields(st, tagName)
	if !tagged {
		return schema.Entity{}, false
	}
	return schema.Entity{Name: typeName.Name(), Fields: fields}, true
}

// collectFields flattens untagged embedded structs into their promoted fields.
func collectFields(st *types.Struct, tagName string) ([]schema.Field, bool) {
	var (
		fields []schema.Field
		tagged bool
	)

	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		tag := reflect.StructTag(st.Tag(i)).Get(tagName)
		if tag != "" {
			tagged = true
		}

		if v.Embedded() && tag == "" {
			if embedded, ok := indirect(v.Type()).Underlying().(*types.Struct); ok {
				promoted, embeddedTagged := collectFields(embedded, tagName)
				fields = append(fields, promoted...)
				tagged = tagged || embeddedTagged
				continue
			}
		}
		if !v.Exported() {
			continue
		}

		name, options, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = stringutils.LowerFirst(v.Name())
		}

		field := schema.Field{Name: name, Kind: kindOf(options)}
		if field.Kind != schema.Attribute {
			field.Target = targetOf(v.Type())
		}
		fields = append(fields, field)
	}

	return fields, tagged
}

func kindOf(options string) schema.FieldKind {
	for _, opt := range strings.Split(options, ",") {
		if kind, ok := schema.ParseFieldKind(strings.TrimSpace(opt)); ok && kind != schema.Attribute {
			return kind
		}
	}
	return schema.Attribute
}

func indirect(t types.Type) types.Type {
	for {
		ptr, ok := t.(*types.Pointer)
		if !ok {
			return t
		}
		t = ptr.Elem()
	}
}

// targetOf unwraps pointers, slices and arrays down to a named struct.
func targetOf(t types.Type) string {
	for {
		switch tt := t.(type) {
		case *types.Pointer:
			t = tt.Elem()
		case *types.Slice:
			t = tt.Elem()
		case *types.Array:
			t = tt.Elem()
		case *types.Named:
			if _, ok := tt.Underlying().(*types.Struct); ok {
				return tt.Obj().Name()
			}
			return ""
		default:
			return ""
		}
	}
}
