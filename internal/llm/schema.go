package llm

import (
	"encoding/json"

	"google.golang.org/genai"
)

// SchemaType names a JSON value type.
type SchemaType string

const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
)

// Schema is a provider-neutral description of a structured response.
// It marshals as a JSON Schema document and converts to a Gemini schema.
type Schema struct {
	Type        SchemaType         `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`

	order []string
}

// Property is one named field of an object schema.
type Property struct {
	Name     string
	Schema   *Schema
	Optional bool
}

// Field declares a required object property.
func Field(name string, s *Schema) Property {
	return Property{Name: name, Schema: s}
}

// OptionalField declares an object property the model may omit.
func OptionalField(name string, s *Schema) Property {
	return Property{Name: name, Schema: s, Optional: true}
}

// Object builds an object schema. Property order is preserved for
// providers that honour it.
func Object(props ...Property) *Schema {
	s := &Schema{Type: TypeObject, Properties: make(map[string]*Schema, len(props))}
	for _, p := range props {
		s.Properties[p.Name] = p.Schema
		s.order = append(s.order, p.Name)
		if !p.Optional {
			s.Required = append(s.Required, p.Name)
		}
	}
	return s
}

// ArrayOf builds an array schema with the given element schema.
func ArrayOf(items *Schema) *Schema { return &Schema{Type: TypeArray, Items: items} }

func String() *Schema  { return &Schema{Type: TypeString} }
func Number() *Schema  { return &Schema{Type: TypeNumber} }
func Integer() *Schema { return &Schema{Type: TypeInteger} }
func Boolean() *Schema { return &Schema{Type: TypeBoolean} }

// Enum builds a string schema restricted to values.
func Enum(values ...string) *Schema { return &Schema{Type: TypeString, Enum: values} }

// Describe sets the description and returns s.
func (s *Schema) Describe(desc string) *Schema {
	s.Description = desc
	return s
}

// PropertyOrder returns object property names in declaration order.
func (s *Schema) PropertyOrder() []string { return s.order }

// JSONSchema renders s as a JSON Schema document.
func (s *Schema) JSONSchema() (json.RawMessage, error) {
	return json.Marshal(s)
}

var genaiTypes = map[SchemaType]genai.Type{
	TypeObject:  genai.TypeObject,
	TypeArray:   genai.TypeArray,
	TypeString:  genai.TypeString,
	TypeNumber:  genai.TypeNumber,
	TypeInteger: genai.TypeInteger,
	TypeBoolean: genai.TypeBoolean,
}

// GenAI converts s to the Gemini SDK schema type.
func (s *Schema) GenAI() *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:             genaiTypes[s.Type],
		Description:      s.Description,
		Required:         s.Required,
		Enum:             s.Enum,
		PropertyOrdering: s.order,
		Items:            s.Items.GenAI(),
	}
	if len(s.Enum) > 0 {
		out.Format = "enum"
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = p.GenAI()
		}
	}
	return out
}
