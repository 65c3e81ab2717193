package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubybellylechon/admin-api/src/models"
)

func TestProductPrices(t *testing.T) {
	db, mock := newMockDB(t)
	pps := NewProductPriceService(db)
	ctx := context.Background()

	mock.ExpectQuery(`FROM aproduct_prices WHERE productid = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"priceid", "productid", "weight", "price", "description"}).
			AddRow(int64(1), int64(7), "1kg", 850.0, "whole").
			AddRow(int64(2), int64(7), "500g", 450.0, "half"))
	mock.ExpectQuery(`INSERT INTO aproduct_prices \(productid, weight, price, description\)`).
		WithArgs(int64(7), "250g", 240.0, "quarter").
		WillReturnRows(sqlmock.NewRows([]string{"priceid"}).AddRow(int64(3)))
	mock.ExpectExec(`UPDATE aproduct_prices SET weight = \$1, price = \$2, description = \$3 WHERE priceid = \$4`).
		WithArgs("250g", 260.0, "quarter", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM aproduct_prices WHERE priceid = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	prices, err := pps.ListByProduct(ctx, "7")
	require.NoError(t, err)
	assert.Len(t, prices, 2)

	created, err := pps.Create(ctx, models.ProductPrice{ProductID: 7, Weight: "250g", Price: 240, Description: "quarter"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	updated, err := pps.Update(ctx, "3", models.ProductPrice{Weight: "250g", Price: 260, Description: "quarter"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ID)

	assert.NoError(t, pps.Delete(ctx, "3"))
}

func TestProductPriceCreate_RequiresProduct(t *testing.T) {
	db, _ := newMockDB(t)
	_, err := NewProductPriceService(db).Create(context.Background(), models.ProductPrice{Weight: "1kg"})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestStaffCRUD(t *testing.T) {
	db, mock := newMockDB(t)
	ss := NewStaffService(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT staffid, name, position, contact FROM astaff`).
		WillReturnRows(sqlmock.NewRows([]string{"staffid", "name", "position", "contact"}).
			AddRow(int64(1), "Ana", "Cook", "0917"))
	mock.ExpectQuery(`INSERT INTO astaff \(name, position, contact\)`).
		WithArgs("Ben", "Cashier", "0918").
		WillReturnRows(sqlmock.NewRows([]string{"staffid"}).AddRow(int64(2)))
	mock.ExpectExec(`UPDATE astaff SET name = \$1, position = \$2, contact = \$3 WHERE staffid = \$4`).
		WithArgs("Ben", "Manager", "0918", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM astaff WHERE staffid = \$1`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM astaff WHERE staffid = \$1`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	staff, err := ss.List(ctx)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "Ana", staff[0].Name)

	created, err := ss.Create(ctx, models.Staff{Name: "Ben", Position: "Cashier", Contact: "0918"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	_, err = ss.Update(ctx, "2", models.Staff{Name: "Ben", Position: "Manager", Contact: "0918"})
	require.NoError(t, err)

	assert.NoError(t, ss.Delete(ctx, "2"))
	assert.ErrorIs(t, ss.Delete(ctx, "2"), ErrNotFound, "second physical delete finds nothing")
}

func TestCustomerCRUD(t *testing.T) {
	db, mock := newMockDB(t)
	cs := NewCustomerService(db)
	ctx := context.Background()

	mock.ExpectQuery(`FROM acustomer`).
		WillReturnRows(sqlmock.NewRows([]string{"customerid", "name", "emailaddress", "address", "contact_number"}).
			AddRow(int64(4), "Carla", "carla@example.com", "Talisay", "0919"))
	mock.ExpectQuery(`INSERT INTO acustomer \(name, emailaddress, address, contact_number\) VALUES \(\$1, \$2, \$3, \$4\)`).
		WithArgs("Dan", "dan@example.com", "Mandaue", "0920").
		WillReturnRows(sqlmock.NewRows([]string{"customerid"}).AddRow(int64(5)))
	mock.ExpectExec(`UPDATE acustomer SET`).
		WithArgs("Dan", "dan@example.com", "Lapu-Lapu", "0920", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM acustomer WHERE customerid = \$1`).
		WithArgs(int64(5)).
		WillReturnError(errors.New("foreign key violation"))

	customers, err := cs.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "carla@example.com", customers[0].EmailAddress)

	created, err := cs.Create(ctx, models.Customer{Name: "Dan", EmailAddress: "dan@example.com", Address: "Mandaue", ContactNumber: "0920"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)

	_, err = cs.Update(ctx, "5", models.Customer{Name: "Dan", EmailAddress: "dan@example.com", Address: "Lapu-Lapu", ContactNumber: "0920"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = cs.Delete(ctx, "5")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestInventoryCRUD(t *testing.T) {
	db, mock := newMockDB(t)
	is := NewInventoryService(db)
	ctx := context.Background()
	added := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM ainventory`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "quantity", "supplier_id", "remaining_stock", "date_added", "status"}).
			AddRow(int64(1), 20, "SUP-1", 12, added, "In stock").
			AddRow(int64(2), 5, "SUP-2", 0, nil, "Out of stock"))
	mock.ExpectQuery(`INSERT INTO ainventory`).
		WithArgs(10, "SUP-3", 10, models.Date{Time: added}, "In stock").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectExec(`UPDATE ainventory`).
		WithArgs(10, "SUP-3", 4, models.Date{Time: added}, "Low", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM ainventory WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	items, err := is.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 14, items[0].DateAdded.Day())
	assert.True(t, items[1].DateAdded.IsZero())

	created, err := is.Create(ctx, models.InventoryItem{
		Quantity: 10, SupplierID: "SUP-3", RemainingStock: 10, DateAdded: models.Date{Time: added}, Status: "In stock",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	_, err = is.Update(ctx, "3", models.InventoryItem{
		Quantity: 10, SupplierID: "SUP-3", RemainingStock: 4, DateAdded: models.Date{Time: added}, Status: "Low",
	})
	require.NoError(t, err)

	assert.NoError(t, is.Delete(ctx, "3"))
}
