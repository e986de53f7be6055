package services

import "intelliforms_backend/models"

// TemplateService is the source of truth for the available presentation
// templates. Defined in code so the service does not depend on the
// filesystem of any one deployment.
type TemplateService struct{}

func NewTemplateService() *TemplateService {
	return &TemplateService{}
}

func (s *TemplateService) ListTemplates() []models.TemplateInfo {
	return []models.TemplateInfo{
		{ID: "moderna", Nombre: "Moderna y Limpia"},
		{ID: "clasica", Nombre: "Clásica Corporativa"},
		{ID: "creativa", Nombre: "Creativa y Colorida"},
	}
}

// SampleForm returns a canned form for the simulation endpoint.
func (s *TemplateService) SampleForm() *models.FormSpec {
	return &models.FormSpec{
		Title: "Formulario Generado",
		Fields: []models.FieldSpec{
			{ID: "nombre", Label: "Nombre", Type: models.FieldText, Required: true},
			{ID: "email", Label: "Correo Electrónico", Type: models.FieldEmail, Required: true},
			{ID: "comentarios", Label: "Comentarios", Type: models.FieldTextarea, Required: false},
		},
	}
}
