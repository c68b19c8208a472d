package jsonrepo

import (
	"context"
	"time"

	"github.com/aminebt/khadamat/internal/docstore"
	"github.com/aminebt/khadamat/internal/models"
)

const appDocument = "app"

type AppRepo struct {
	Store docstore.Store
}

func NewAppRepo(store docstore.Store) *AppRepo {
	return &AppRepo{Store: store}
}

func (r *AppRepo) Services(ctx context.Context) ([]models.Service, error) {
	var doc models.AppDocument
	if err := r.Store.View(appDocument, &doc); err != nil {
		return nil, err
	}
	if doc.Services == nil {
		return []models.Service{}, nil
	}
	return doc.Services, nil
}

func (r *AppRepo) AddService(ctx context.Context, service models.Service) error {
	var doc models.AppDocument
	return r.Store.Mutate(appDocument, &doc, func() error {
		doc.Services = append(doc.Services, service)
		return nil
	})
}

func (r *AppRepo) DeleteService(ctx context.Context, name string) error {
	var doc models.AppDocument
	return r.Store.Mutate(appDocument, &doc, func() error {
		kept := doc.Services[:0]
		for _, s := range doc.Services {
			if s.Name != name {
				kept = append(kept, s)
			}
		}
		doc.Services = kept
		return nil
	})
}

func (r *AppRepo) Alerts(ctx context.Context) ([]models.Alert, error) {
	var doc models.AppDocument
	if err := r.Store.View(appDocument, &doc); err != nil {
		return nil, err
	}
	if doc.Alerts == nil {
		return []models.Alert{}, nil
	}
	return doc.Alerts, nil
}

func (r *AppRepo) SetAlert(ctx context.Context, alert models.Alert) error {
	if alert.Date == "" {
		alert.Date = time.Now().Format(models.DateLayout)
	}
	var doc models.AppDocument
	return r.Store.Mutate(appDocument, &doc, func() error {
		doc.Alerts = []models.Alert{alert}
		return nil
	})
}

func (r *AppRepo) Requests(ctx context.Context) ([]models.Request, error) {
	var doc models.AppDocument
	if err := r.Store.View(appDocument, &doc); err != nil {
		return nil, err
	}
	if doc.Requests == nil {
		return []models.Request{}, nil
	}
	return doc.Requests, nil
}

func (r *AppRepo) AddRequest(ctx context.Context, request models.Request) (models.Request, error) {
	var doc models.AppDocument
	err := r.Store.Mutate(appDocument, &doc, func() error {
		// max+1 instead of len+1: never reuses an id when requests were
		// removed by hand from the document.
		maxID := 0
		for _, q := range doc.Requests {
			if q.ID > maxID {
				maxID = q.ID
			}
		}
		request.ID = maxID + 1
		if request.Date == "" {
			request.Date = time.Now().Format(models.DateLayout)
		}
		doc.Requests = append(doc.Requests, request)
		return nil
	})
	if err != nil {
		return models.Request{}, err
	}
	return request, nil
}
