package gormrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/aminebt/khadamat/internal/models"
)

type AppRepo struct {
	DB *gorm.DB
}

func NewAppRepo(db *gorm.DB) *AppRepo {
	return &AppRepo{DB: db}
}

func (r *AppRepo) Services(ctx context.Context) ([]models.Service, error) {
	services := []models.Service{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *AppRepo) AddService(ctx context.Context, service models.Service) error {
	return r.DB.WithContext(ctx).Create(&service).Error
}

func (r *AppRepo) DeleteService(ctx context.Context, name string) error {
	return r.DB.WithContext(ctx).Where("name = ?", name).Delete(&models.Service{}).Error
}

func (r *AppRepo) Alerts(ctx context.Context) ([]models.Alert, error) {
	alerts := []models.Alert{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *AppRepo) SetAlert(ctx context.Context, alert models.Alert) error {
	if alert.Date == "" {
		alert.Date = time.Now().Format(models.DateLayout)
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Alert{}).Error; err != nil {
			return err
		}
		return tx.Create(&alert).Error
	})
}

func (r *AppRepo) Requests(ctx context.Context) ([]models.Request, error) {
	requests := []models.Request{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *AppRepo) AddRequest(ctx context.Context, request models.Request) (models.Request, error) {
	if request.Date == "" {
		request.Date = time.Now().Format(models.DateLayout)
	}
	if err := r.DB.WithContext(ctx).Create(&request).Error; err != nil {
		return models.Request{}, err
	}
	return request, nil
}
