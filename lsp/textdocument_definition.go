package lsp

// The goto family: declaration, definition, type definition and implementation
// share one result shape.

type DeclarationParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

type DefinitionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

type TypeDefinitionParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

type ImplementationParams struct {
	TextDocumentPositionParams
	WorkDoneProgressParams
	PartialResultParams
}

// LocationResult is Location | Location[] | LocationLink[].
type LocationResult struct {
	Value any
}

var locationResultShapes = union(
	shapeOf[Location]("Location"),
	shapeOf[[]Location]("Location[]"),
	shapeOf[[]LocationLink]("LocationLink[]"),
)

func NewLocationResult(locations ...Location) LocationResult {
	if len(locations) == 1 {
		return LocationResult{Value: locations[0]}
	}
	if locations == nil {
		locations = []Location{}
	}
	return LocationResult{Value: locations}
}

func (r *LocationResult) UnmarshalJSON(data []byte) error {
	v, err := locationResultShapes.decode("LocationResult", data)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

func (r LocationResult) MarshalJSON() ([]byte, error) {
	return locationResultShapes.encode("LocationResult", r.Value)
}

// Locations flattens the result; links are reduced to their target selection.
func (r LocationResult) Locations() []Location {
	switch v := r.Value.(type) {
	case Location:
		return []Location{v}
	case []Location:
		return v
	case []LocationLink:
		out := make([]Location, 0, len(v))
		for _, link := range v {
			out = append(out, Location{URI: link.TargetURI, Range: link.TargetSelectionRange})
		}
		return out
	}
	return nil
}

func (r LocationResult) Links() ([]LocationLink, bool) {
	return variant[[]LocationLink](r.Value)
}

type DeclarationOptions struct {
	WorkDoneProgressOptions
}

type DeclarationRegistrationOptions struct {
	DeclarationOptions
	TextDocumentRegistrationOptions
	StaticRegistrationOptions
}

type DefinitionOptions struct {
	WorkDoneProgressOptions
}

type DefinitionRegistrationOptions struct {
	TextDocumentRegistrationOptions
	DefinitionOptions
}

type TypeDefinitionOptions struct {
	WorkDoneProgressOptions
}

type TypeDefinitionRegistrationOptions struct {
	TextDocumentRegistrationOptions
	TypeDefinitionOptions
	StaticRegistrationOptions
}

type ImplementationOptions struct {
	WorkDoneProgressOptions
}

type ImplementationRegistrationOptions struct {
	TextDocumentRegistrationOptions
	ImplementationOptions
	StaticRegistrationOptions
}
