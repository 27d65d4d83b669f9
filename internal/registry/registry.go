// Package registry is the static catalogue of every recognized option:
// name, value kind, built-in default and, where one exists, a cross-field
// constraint reference. No validation logic lives here.
package registry

import "fmt"

// Kind is the declared value kind of an option.
type Kind string

const (
	KindString     Kind = "string"
	KindBool       Kind = "bool"
	KindPath       Kind = "path"
	KindURL        Kind = "url"
	KindEnum       Kind = "enum"
	KindStringList Kind = "stringList"
	KindHeaderList Kind = "headerList"
	KindResource   Kind = "resource"
)

// Option describes one configuration option.
type Option struct {
	Name    string
	Kind    Kind
	Default any
	Enum    []string // allowed members, enum kind only
	Help    string

	// ConstraintRef names the cross-field rule this option participates
	// in, for help and error output. The rules themselves live in the
	// validation pipeline.
	ConstraintRef string
}

// Option names. File keys are normalized to these; flag names are the
// dashed form of these.
const (
	Input                       = "input"
	URL                         = "url"
	HTTPHeaders                 = "http_headers"
	HTTPIgnoreTLS               = "http_ignore_tls"
	InputFileType               = "input_file_type"
	OpenAPIScopes               = "openapi_scopes"
	Output                      = "output"
	TargetVersion               = "target_version"
	BaseClass                   = "base_class"
	ClassName                   = "class_name"
	FieldConstraints            = "field_constraints"
	UseAnnotated                = "use_annotated"
	FieldExtraKeys              = "field_extra_keys"
	FieldIncludeAllKeys         = "field_include_all_keys"
	SnakeCaseField              = "snake_case_field"
	StripDefaultNone            = "strip_default_none"
	DisableAppendingItemSuffix  = "disable_appending_item_suffix"
	AllowPopulationByFieldName  = "allow_population_by_field_name"
	EnableFauxImmutability      = "enable_faux_immutability"
	UseDefault                  = "use_default"
	ForceOptional               = "force_optional"
	StrictNullable              = "strict_nullable"
	StrictTypes                 = "strict_types"
	DisableTimestamp            = "disable_timestamp"
	UseStandardCollections      = "use_standard_collections"
	UseGenericContainerTypes    = "use_generic_container_types"
	UseSchemaDescription        = "use_schema_description"
	UseTitleAsName              = "use_title_as_name"
	ReuseModel                  = "reuse_model"
	EnumFieldAsLiteral          = "enum_field_as_literal"
	SetDefaultEnumMember        = "set_default_enum_member"
	EmptyEnumFieldName          = "empty_enum_field_name"
	CustomTemplateDir           = "custom_template_dir"
	ExtraTemplateData           = "extra_template_data"
	Aliases                     = "aliases"
	Encoding                    = "encoding"
	Validation                  = "validation"
	WrapStringLiteral           = "wrap_string_literal"
	Debug                       = "debug"
	Version                     = "version"

	UseNonPositiveNegativeNumberConstrainedTypes = "use_non_positive_negative_number_constrained_types"
)

// Target version members. LegacyTargetVersion is the oldest still-accepted
// runtime target; generic container types cannot be generated for it.
const (
	LegacyTargetVersion  = "3.6"
	DefaultTargetVersion = "3.7"
)

// DefaultBaseClass is the base class generated models extend unless
// overridden.
const DefaultBaseClass = "pydantic.BaseModel"

// options is the catalogue, in declaration order. The order is stable and
// only used for deterministic help and error output.
var options = []Option{
	{Name: Input, Kind: KindPath, Default: "", Help: "Input file/directory, otherwise read from stdin"},
	{Name: URL, Kind: KindURL, Default: "", Help: "Input file URL. --input is ignored when --url is used"},
	{Name: HTTPHeaders, Kind: KindHeaderList, Default: []string(nil), Help: `Set headers in HTTP requests to the remote host (example: "Authorization: Basic dXNlcjpwYXNz")`},
	{Name: HTTPIgnoreTLS, Kind: KindBool, Default: false, Help: "Disable verification of the remote host's TLS certificate"},
	{Name: InputFileType, Kind: KindEnum, Default: "auto", Enum: []string{"auto", "openapi", "jsonschema", "json", "yaml"}, Help: "Input file type"},
	{Name: OpenAPIScopes, Kind: KindStringList, Default: []string{"schemas"}, Enum: []string{"schemas", "paths"}, ConstraintRef: "openapi-scopes-members", Help: "Scopes of OpenAPI model generation"},
	{Name: Output, Kind: KindPath, Default: "", Help: "Output file, otherwise write to stdout"},
	{Name: TargetVersion, Kind: KindEnum, Default: DefaultTargetVersion, Enum: []string{"3.6", "3.7", "3.8", "3.9"}, ConstraintRef: "generic-containers-target", Help: "Target runtime version"},
	{Name: BaseClass, Kind: KindString, Default: DefaultBaseClass, Help: "Base class"},
	{Name: ClassName, Kind: KindString, Default: "", Help: "Set class name of root model"},
	{Name: FieldConstraints, Kind: KindBool, Default: false, ConstraintRef: "annotated-implies-constraints", Help: "Use field constraints instead of con* annotations"},
	{Name: UseAnnotated, Kind: KindBool, Default: false, ConstraintRef: "annotated-implies-constraints", Help: "Use annotated form for fields. Also enables --field-constraints"},
	{Name: UseNonPositiveNegativeNumberConstrainedTypes, Kind: KindBool, Default: false, Help: "Use the Non{Positive,Negative}{FloatInt} types instead of the corresponding con* constrained types"},
	{Name: FieldExtraKeys, Kind: KindStringList, Default: []string(nil), Help: "Add extra keys to field parameters"},
	{Name: FieldIncludeAllKeys, Kind: KindBool, Default: false, Help: "Add all keys to field parameters"},
	{Name: SnakeCaseField, Kind: KindBool, Default: false, Help: "Change camel-case field name to snake-case"},
	{Name: StripDefaultNone, Kind: KindBool, Default: false, Help: "Strip default None on fields"},
	{Name: DisableAppendingItemSuffix, Kind: KindBool, Default: false, Help: "Disable appending `Item` suffix to model name in an array"},
	{Name: AllowPopulationByFieldName, Kind: KindBool, Default: false, Help: "Allow population by field name"},
	{Name: EnableFauxImmutability, Kind: KindBool, Default: false, Help: "Enable faux immutability"},
	{Name: UseDefault, Kind: KindBool, Default: false, Help: "Use default value even if a field is required"},
	{Name: ForceOptional, Kind: KindBool, Default: false, Help: "Force optional for required fields"},
	{Name: StrictNullable, Kind: KindBool, Default: false, Help: "Treat default field as a non-nullable field"},
	{Name: StrictTypes, Kind: KindStringList, Default: []string(nil), Help: "Use strict types"},
	{Name: DisableTimestamp, Kind: KindBool, Default: false, Help: "Disable timestamp on file headers"},
	{Name: UseStandardCollections, Kind: KindBool, Default: false, Help: "Use standard collections for type hinting"},
	{Name: UseGenericContainerTypes, Kind: KindBool, Default: false, ConstraintRef: "generic-containers-target", Help: "Use generic container types for type hinting"},
	{Name: UseSchemaDescription, Kind: KindBool, Default: false, Help: "Use schema description to populate class docstring"},
	{Name: UseTitleAsName, Kind: KindBool, Default: false, Help: "Use titles as class names of models"},
	{Name: ReuseModel, Kind: KindBool, Default: false, Help: "Reuse models when a module has the model with the same content"},
	{Name: EnumFieldAsLiteral, Kind: KindEnum, Default: "none", Enum: []string{"none", "all", "one"}, Help: "Parse enum field as literal"},
	{Name: SetDefaultEnumMember, Kind: KindBool, Default: false, Help: "Set enum members as default values for enum field"},
	{Name: EmptyEnumFieldName, Kind: KindString, Default: "_", Help: "Set field name when enum value is empty"},
	{Name: CustomTemplateDir, Kind: KindPath, Default: "", Help: "Custom template directory"},
	{Name: ExtraTemplateData, Kind: KindResource, Default: "", Help: "Extra template data file"},
	{Name: Aliases, Kind: KindResource, Default: "", Help: "Alias mapping file"},
	{Name: Encoding, Kind: KindString, Default: "UTF-8", Help: "The encoding of input and output"},
	{Name: Validation, Kind: KindBool, Default: false, Help: "Enable validation"},
	{Name: WrapStringLiteral, Kind: KindBool, Default: false, Help: "Wrap long string literals in generated code"},
	{Name: Debug, Kind: KindBool, Default: false, Help: "Show debug message"},
	{Name: Version, Kind: KindBool, Default: false, Help: "Show version"},
}

var byName = func() map[string]Option {
	m := make(map[string]Option, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}()

// All returns every option in declaration order.
func All() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Describe looks up one option by its canonical name.
func Describe(name string) (Option, error) {
	opt, ok := byName[name]
	if !ok {
		return Option{}, fmt.Errorf("unknown option: %s", name)
	}
	return opt, nil
}

// Known reports whether name is a recognized option.
func Known(name string) bool {
	_, ok := byName[name]
	return ok
}
