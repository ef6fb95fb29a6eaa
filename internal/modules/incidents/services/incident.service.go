package services

import (
	"gestion-projets-core/internal/infrastructure/datasource"
	"gestion-projets-core/internal/shared/listing"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/resource"
)

type IncidentService struct {
	*resource.Service[models.Incident]
}

func NewIncidentService(src *datasource.Source) (*IncidentService, error) {
	repo, err := datasource.Resolve[models.Incident](src, datasource.Incidents)
	if err != nil {
		return nil, err
	}
	return &IncidentService{
		Service: resource.NewService(repo, resource.Options[models.Incident]{
			NotFound: "Incident non trouvé",
			PageSize: listing.IncidentPageSize,
			Check:    checkIncident,
		}),
	}, nil
}

func checkIncident(i models.Incident) map[string]string {
	if _, ok := listing.ParseDate(i.SortDate()); !ok {
		return map[string]string{"date": "Date invalide"}
	}
	return nil
}
