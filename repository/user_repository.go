package repository

import (
	"gorm.io/gorm"

	"github.com/mvegadev/comanda/models"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll() ([]*models.User, error) {
	var users []*models.User
	err := r.db.Order("name asc").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByRole(role models.UserRole) ([]*models.User, error) {
	var users []*models.User
	err := r.db.Where("role = ?", role).Order("name asc").Find(&users).Error
	return users, err
}

func (r *UserRepository) Save(user *models.User) (*models.User, error) {
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Update(user *models.User) (*models.User, error) {
	if err := r.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Delete(id string) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
