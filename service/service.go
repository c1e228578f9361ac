package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/si-gho/pijar-pro-inventory/models"
)

// DefaultOperator adalah user pencatat ketika request tidak membawa
// identitas. Di-seed bersama data awal.
const DefaultOperator = "operator1"

type RecordTransactionInput struct {
	Name     string
	Type     models.TrxType
	Quantity int
	Date     time.Time
	Notes    string
	Username string // kosong = DefaultOperator
}

type CreateItemInput struct {
	ItemName    string `validate:"required,max=255,item_name_chars"`
	Description string `validate:"max=500"`
}

type CreateUserInput struct {
	Username string
	FullName string
	Role     string // kosong = operator
}

type Service interface {
	// RecordTransaction memvalidasi dan mencatat satu pergerakan barang.
	// Insert transaksi dan mutasi stok berjalan dalam satu transaksi DB;
	// pengurangan stok memakai conditional update sehingga saldo tidak
	// pernah negatif meski ada penulis bersamaan.
	RecordTransaction(ctx context.Context, in RecordTransactionInput) (TransactionView, error)

	CreateMasterItem(ctx context.Context, in CreateItemInput) (models.Inventory, error)
	CurrentStock(ctx context.Context, inventoryID uint) (int, error)

	ListItems(ctx context.Context) ([]models.Inventory, error)
	ListTransactions(ctx context.Context) ([]TransactionView, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (models.User, error)
}

type service struct{ db *gorm.DB }

func NewService(db *gorm.DB) Service { return &service{db: db} }

var itemNameRe = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.,()]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("item_name_chars", func(fl validator.FieldLevel) bool {
		return itemNameRe.MatchString(fl.Field().String())
	})
	return v
}

func (s *service) RecordTransaction(ctx context.Context, in RecordTransactionInput) (TransactionView, error) {
	if verr := validateTransactionInput(in); verr != nil {
		return TransactionView{}, verr
	}
	if in.Username == "" {
		in.Username = DefaultOperator
	}

	var (
		trx  models.Transaction
		item models.Inventory
		user models.User
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ?", in.Username).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := tx.Where("item_name = ?", in.Name).First(&item).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// Barang belum dikenal: transaksi masuk membuat master baru
			// dengan stok 0, transaksi keluar selalu ditolak.
			if in.Type == models.TrxKeluar {
				return ErrItemNotFound
			}
			item = models.Inventory{
				ItemName:    in.Name,
				Description: in.Notes,
				StockQty:    0,
				MinStock:    DefaultMinStock,
				MaxStock:    DefaultMaxStock,
			}
			if err := tx.Create(&item).Error; err != nil {
				if isUniqueViolation(err) {
					return tx.Where("item_name = ?", in.Name).First(&item).Error
				}
				return err
			}
		}

		if in.Type == models.TrxKeluar {
			dec := tx.Model(&models.Inventory{}).
				Where("id = ? AND stock_qty >= ?", item.ID, in.Quantity).
				UpdateColumn("stock_qty", gorm.Expr("stock_qty - ?", in.Quantity))
			if dec.Error != nil {
				return dec.Error
			}
			if dec.RowsAffected == 0 {
				return &InsufficientStockError{
					ItemName:  item.ItemName,
					Available: item.StockQty,
					Requested: in.Quantity,
				}
			}
		} else {
			inc := tx.Model(&models.Inventory{}).
				Where("id = ?", item.ID).
				UpdateColumn("stock_qty", gorm.Expr("stock_qty + ?", in.Quantity))
			if inc.Error != nil {
				return inc.Error
			}
		}

		trx = models.Transaction{
			UserID:      user.ID,
			InventoryID: item.ID,
			TrxType:     in.Type,
			Qty:         in.Quantity,
			TrxDate:     in.Date,
		}
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}

		// baca ulang saldo pasca-mutasi untuk response
		var current models.Inventory
		if err := tx.First(&current, item.ID).Error; err != nil {
			return err
		}
		item = current
		return nil
	})
	if err != nil {
		return TransactionView{}, err
	}

	return TransactionView{
		ID:         trx.ID,
		Date:       trx.TrxDate,
		Name:       item.ItemName,
		Type:       trx.TrxType,
		Quantity:   trx.Qty,
		Notes:      item.Description,
		Project:    user.FullName,
		Supervisor: user.FullName,
		StockQty:   item.StockQty,
		CreatedAt:  trx.CreatedAt,
	}, nil
}

func validateTransactionInput(in RecordTransactionInput) *ValidationError {
	verr := newValidationError()
	if in.Name == "" {
		verr.Fields["name"] = "Nama barang harus diisi"
	}
	if !in.Type.Valid() {
		verr.Fields["type"] = "Tipe barang harus dipilih"
	}
	if in.Quantity < 1 {
		verr.Fields["quantity"] = "Jumlah harus lebih dari 0"
	}
	if in.Date.IsZero() {
		verr.Fields["date"] = "Tanggal harus diisi"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func (s *service) CreateMasterItem(ctx context.Context, in CreateItemInput) (models.Inventory, error) {
	if err := validate.Struct(in); err != nil {
		return models.Inventory{}, itemValidationError(err)
	}

	var exist models.Inventory
	if err := s.db.WithContext(ctx).Where("item_name = ?", in.ItemName).First(&exist).Error; err == nil {
		return models.Inventory{}, ErrDuplicateItem
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Inventory{}, err
	}

	item := models.Inventory{
		ItemName:    in.ItemName,
		Description: in.Description,
		StockQty:    0,
		MinStock:    DefaultMinStock,
		MaxStock:    DefaultMaxStock,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		// pre-check di atas tidak atomik; tangkap juga pelanggaran unique
		// index dari Postgres
		if isUniqueViolation(err) {
			return models.Inventory{}, ErrDuplicateItem
		}
		return models.Inventory{}, err
	}
	return item, nil
}

func itemValidationError(err error) error {
	verrs := validator.ValidationErrors{}
	if !errors.As(err, &verrs) {
		return err
	}

	out := newValidationError()
	for _, fe := range verrs {
		switch fe.Field() {
		case "ItemName":
			switch fe.Tag() {
			case "required":
				out.Fields["item_name"] = "Nama barang harus diisi"
			case "max":
				out.Fields["item_name"] = "Nama barang terlalu panjang"
			default:
				out.Fields["item_name"] = "Nama barang mengandung karakter tidak valid"
			}
		case "Description":
			out.Fields["description"] = "Deskripsi terlalu panjang"
		}
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *service) CurrentStock(ctx context.Context, inventoryID uint) (int, error) {
	var item models.Inventory
	err := s.db.WithContext(ctx).First(&item, inventoryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrItemNotFound
	}
	if err != nil {
		return 0, err
	}
	return item.StockQty, nil
}

func (s *service) ListItems(ctx context.Context) ([]models.Inventory, error) {
	var items []models.Inventory
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *service) ListTransactions(ctx context.Context) ([]TransactionView, error) {
	var rows []TransactionView
	err := s.db.WithContext(ctx).
		Table("transactions").
		Select(`transactions.id,
			transactions.trx_date AS date,
			inventory.item_name AS name,
			transactions.trx_type AS type,
			transactions.qty AS quantity,
			inventory.description AS notes,
			users.full_name AS project,
			users.full_name AS supervisor,
			inventory.stock_qty,
			transactions.created_at`).
		Joins("INNER JOIN users ON users.id = transactions.user_id").
		Joins("INNER JOIN inventory ON inventory.id = transactions.inventory_id").
		Order("transactions.trx_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *service) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (s *service) CreateUser(ctx context.Context, in CreateUserInput) (models.User, error) {
	role := in.Role
	if role == "" {
		role = "operator"
	}
	user := models.User{
		Username: in.Username,
		FullName: in.FullName,
		Role:     role,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
