package models

import "fmt"

// FieldError is a validation failure tied to one input field
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateHierarchy checks the parent/child rules for a meeting. parent must
// be the record r.ParentID points at, with its Frente loaded. The tree is
// only ever two levels deep (activity > task), so a self-reference is the
// only cycle worth checking.
func ValidateHierarchy(r *Reunion, parent *Reunion) error {
	if parent == nil {
		return nil
	}
	if r.ID != 0 && parent.ID == r.ID {
		return &FieldError{Field: "parent", Message: "Una reunión no puede ser su propio padre."}
	}
	if parent.Frente == nil {
		return &FieldError{Field: "parent", Message: "La reunión padre no tiene un frente asignado."}
	}
	if parent.Frente.Tipo != FrenteActividad {
		return &FieldError{Field: "parent", Message: "El padre debe pertenecer a un frente de tipo actividad."}
	}
	if r.ProyectoID != nil && parent.ProyectoID != nil && *r.ProyectoID != *parent.ProyectoID {
		return &FieldError{Field: "parent", Message: "La tarea debe pertenecer al mismo proyecto que su actividad."}
	}
	return nil
}
