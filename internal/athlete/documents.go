package athlete

import (
	"context"
	"maps"
	"slices"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/storage"
)

type document struct {
	field  string
	folder string
	target func(a *models.Athlete) *string
}

var documents = []document{
	{"photo", "athletes", func(a *models.Athlete) *string { return &a.Photo }},
	{"identity_document", "athletes/docs", func(a *models.Athlete) *string { return &a.IdentityDocument }},
	{"birth_certificate", "athletes/docs", func(a *models.Athlete) *string { return &a.BirthCertificate }},
	{"affiliation", "athletes/docs", func(a *models.Athlete) *string { return &a.Affiliation }},
	{"health_certificate", "athletes/docs", func(a *models.Athlete) *string { return &a.HealthCertificate }},
	{"guardian_permit", "athletes/docs", func(a *models.Athlete) *string { return &a.GuardianPermit }},
}

// FileFields lists the multipart parts an athlete request may carry.
func FileFields() []string {
	fields := make([]string, len(documents))
	for i, d := range documents {
		fields[i] = d.field
	}
	return fields
}

// uploadAll stores every given file and points a at it. It returns the new
// urls and the urls they replaced. On failure the files already stored are
// removed and a is left untouched.
func uploadAll(ctx context.Context, store storage.ObjectStore, a *models.Athlete, files map[string]*storage.File) (added, replaced []string, err error) {
	uploaded := make(map[string]string, len(files))
	for _, d := range documents {
		f, ok := files[d.field]
		if !ok || f == nil {
			continue
		}
		url, err := storage.Put(ctx, store, f, d.folder)
		if err != nil {
			storage.DeleteAsync(ctx, store, slices.Collect(maps.Values(uploaded))...)
			return nil, nil, err
		}
		uploaded[d.field] = url
	}
	for _, d := range documents {
		url, ok := uploaded[d.field]
		if !ok {
			continue
		}
		slot := d.target(a)
		if *slot != "" {
			replaced = append(replaced, *slot)
		}
		*slot = url
		added = append(added, url)
	}
	return added, replaced, nil
}
