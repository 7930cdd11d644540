package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/molino-api/internal/application/auth"
	"github.com/jhoicas/molino-api/internal/application/dto"
	"github.com/jhoicas/molino-api/internal/application/ledger"
	"github.com/jhoicas/molino-api/internal/application/production"
	"github.com/jhoicas/molino-api/internal/application/reporting"
	"github.com/jhoicas/molino-api/internal/application/testutil"
	"github.com/jhoicas/molino-api/internal/application/trading"
	"github.com/jhoicas/molino-api/internal/application/usecase"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/infrastructure/memory"
	"github.com/jhoicas/molino-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/molino-api/internal/interfaces/http"
	"github.com/jhoicas/molino-api/pkg/logger"
)

// buildAPI arma la API completa sobre el almacenamiento en memoria.
func buildAPI(f *testutil.Fixture) *fiber.App {
	log := logger.Nop()
	users := memory.NewUserRepository(f.Store)
	tradingDeps := trading.Deps{
		Products: f.Products, Parties: f.Parties, Orders: f.Orders, Stock: f.Stock,
		Locker: f.Locker, TxRunner: f.TxRunner, Log: log,
	}
	purchases := trading.NewPurchaseOrchestrator(tradingDeps)
	sales := trading.NewSalesOrchestrator(tradingDeps)
	prod := production.NewUseCase(production.Deps{
		Products: f.Products, Machines: f.Machines, Staff: f.Staff, Records: f.Production, Stock: f.Stock,
		Locker: f.Locker, TxRunner: f.TxRunner, Log: log,
	})
	stock := ledger.NewService(f.Products, f.Stock, f.Locker, f.TxRunner, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}),
		UserUC:     usecase.NewUserUseCase(users),
		ProductUC:  usecase.NewProductUseCase(f.Products),
		PartyUC:    usecase.NewPartyUseCase(f.Parties),
		AssetUC:    usecase.NewAssetUseCase(f.Machines, f.Staff),
		Stock:      stock,
		Purchases:  purchases,
		Sales:      sales,
		Production: prod,
		Reports: reporting.NewUseCase(reporting.Deps{
			Stock: stock, Purchases: purchases, Sales: sales, Production: prod,
			Parties: f.Parties, Products: f.Products, PDF: pdf.NewMarotoPDFGenerator(), CompanyName: "Molino Test",
		}),
		EffThreshold: prod.Threshold(),
		JWTSecret:    testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, role string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", bearer(t, role, 60))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func line(productID, qty, price string) map[string]any {
	return map[string]any{"product_id": productID, "quantity": qty, "unit_price": price}
}

func TestSalesAPI_StockInsuficienteRetorna409ConDetalle(t *testing.T) {
	f := testutil.New()
	app := buildAPI(f)
	customer := f.Party(t, entity.PartyKindCustomer, "Granero El Sol")
	rice := f.Product(t, "BLA-01", entity.ProductTypeFinishedGood, "4200", "10")

	resp, body := call(t, app, http.MethodPost, "/api/sales", "vendedor", map[string]any{
		"party_id": customer.ID,
		"lines":    []any{line(rice.ID, "15", "4200")},
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode, string(body))

	var er dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &er))
	assert.Equal(t, "INSUFFICIENT_STOCK", er.Code)
	require.Len(t, er.Details, 1)
	assert.Contains(t, er.Details[0], "línea 1")
	assert.True(t, f.Quantity(t, rice.ID).Equal(testutil.Dec("10")), "el rechazo no mueve existencias")
}

func TestSalesAPI_ViolacionesDeNegocioRetornan422(t *testing.T) {
	f := testutil.New()
	app := buildAPI(f)
	supplier := f.Party(t, entity.PartyKindSupplier, "Agricultor")
	rice := f.Product(t, "BLA-01", entity.ProductTypeFinishedGood, "4200", "10")

	resp, body := call(t, app, http.MethodPost, "/api/sales", "admin", map[string]any{
		"party_id": supplier.ID,
		"lines":    []any{line(rice.ID, "1", "0")},
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, string(body))

	var er dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &er))
	assert.Equal(t, "VALIDATION", er.Code)
	assert.Len(t, er.Details, 2, "tercero de tipo incorrecto y precio en cero")
}

func TestSalesAPI_SinLineasEsFormatoInvalido(t *testing.T) {
	f := testutil.New()
	app := buildAPI(f)
	customer := f.Party(t, entity.PartyKindCustomer, "Granero El Sol")

	resp, body := call(t, app, http.MethodPost, "/api/sales", "vendedor", map[string]any{
		"party_id": customer.ID,
		"lines":    []any{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "INVALID_INPUT")
}

func TestPurchasesAPI_CommitAcreditaYNumera(t *testing.T) {
	f := testutil.New()
	app := buildAPI(f)
	supplier := f.Party(t, entity.PartyKindSupplier, "Agricultor Pérez")
	paddy := f.Product(t, "PAD-01", entity.ProductTypeRawMaterial, "1850", "100")

	resp, body := call(t, app, http.MethodPost, "/api/purchases", "bodeguero", map[string]any{
		"party_id":    supplier.ID,
		"paid_amount": "10000",
		"lines":       []any{line(paddy.ID, "50", "1850")},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var out dto.OrderResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, strings.HasPrefix(out.Number, "PO-"), out.Number)
	assert.Equal(t, "PARTIAL", out.PaymentStatus)
	assert.True(t, out.TotalAmount.Equal(testutil.Dec("92500")))
	assert.True(t, f.Quantity(t, paddy.ID).Equal(testutil.Dec("150")))

	resp, body = call(t, app, http.MethodPost, "/api/purchases/"+out.ID+"/payments", "admin", map[string]any{"amount": "82500"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "PAID", out.PaymentStatus)

	resp, _ = call(t, app, http.MethodGet, "/api/sales/"+out.ID, "admin", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "una compra no se consulta como venta")
}

func TestPurchasesAPI_VendedorNoPuedeComprar(t *testing.T) {
	f := testutil.New()
	app := buildAPI(f)

	resp, _ := call(t, app, http.MethodPost, "/api/purchases", "vendedor", map[string]any{})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSalesAPI_ValidateNoAplica(t *testing.T) {
	f := testutil.New()
	app := buildAPI(f)
	customer := f.Party(t, entity.PartyKindCustomer, "Granero El Sol")
	rice := f.Product(t, "BLA-01", entity.ProductTypeFinishedGood, "4200", "10")

	resp, body := call(t, app, http.MethodPost, "/api/sales/validate", "vendedor", map[string]any{
		"party_id": customer.ID,
		"lines":    []any{line(rice.ID, "6", "4200"), line(rice.ID, "6", "4200")},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out dto.ValidationResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.False(t, out.Valid)
	assert.True(t, out.InsufficientStock, "la segunda línea supera lo disponible acumulado")
	assert.True(t, f.Quantity(t, rice.ID).Equal(testutil.Dec("10")))
}

func TestStockAPI_AjusteSoloAdmin(t *testing.T) {
	f := testutil.New()
	app := buildAPI(f)
	rice := f.Product(t, "BLA-01", entity.ProductTypeFinishedGood, "4200", "10")

	resp, _ := call(t, app, http.MethodPost, "/api/stock/"+rice.ID+"/adjust", "bodeguero",
		map[string]any{"delta": "-2", "reason": "merma"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := call(t, app, http.MethodPost, "/api/stock/"+rice.ID+"/adjust", "admin",
		map[string]any{"delta": "-12", "reason": "conteo físico"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode, string(body))

	resp, body = call(t, app, http.MethodPost, "/api/stock/"+rice.ID+"/adjust", "admin",
		map[string]any{"delta": "-10", "reason": "conteo físico"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out dto.StockResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "OUT_OF_STOCK", out.Status)
}

func TestStockAPI_RangoInvalido(t *testing.T) {
	f := testutil.New()
	app := buildAPI(f)
	rice := f.Product(t, "BLA-01", entity.ProductTypeFinishedGood, "4200", "10")

	resp, body := call(t, app, http.MethodPut, "/api/stock/"+rice.ID+"/thresholds", "bodeguero",
		map[string]any{"min_level": "100", "max_level": "50"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "INVALID_RANGE")
}
