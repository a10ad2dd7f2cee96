package rest

import (
	"errors"
	"net/http"

	"lending/core"
	"lending/handler/param"
	"lending/handler/render"
	"lending/pkg/number"

	"github.com/go-chi/chi"
)

// userHeader carries the caller identity, set by the deployment's
// authenticating proxy.
const userHeader = "X-User-Id"

// Handle mount lending api routes
func Handle(engine core.LendingService) http.Handler {
	r := chi.NewRouter()

	r.Post("/collaterals", depositHandler(engine))
	r.Post("/loans", borrowHandler(engine))
	r.Post("/loans/quick", depositAndBorrowHandler(engine))
	r.Post("/interest/recalculate", recalculateHandler(engine))
	r.Post("/interest", setInterestHandler(engine))
	r.Post("/liquidations/check", liquidationsHandler(engine))

	r.Get("/system", systemHandler(engine))
	r.Get("/accounts", accountsHandler(engine))
	r.Get("/users/{user}/loan", loanHandler(engine))
	r.Get("/users/{user}/collateral", collateralHandler(engine))
	r.Get("/users/{user}/account", accountHandler(engine))

	return r
}

func caller(r *http.Request) string {
	return r.Header.Get(userHeader)
}

func renderErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, core.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, core.ErrAlreadyInitialized),
		errors.Is(err, core.ErrNotInitialized),
		errors.Is(err, core.ErrInvalidAsset),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInsufficientCollateral),
		errors.Is(err, core.ErrTransferFailed):
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrOracleUnavailable),
		errors.Is(err, core.ErrStalePrice):
		status = http.StatusBadGateway
	}

	render.Error(w, status, status, err)
}

func depositHandler(engine core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			AssetID string `json:"asset_id"`
			Amount  string `json:"amount"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		input := core.CollateralInput{
			AssetID: params.AssetID,
			Amount:  number.Decimal(params.Amount),
		}

		if err := engine.DepositCollateral(r.Context(), caller(r), &input); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}

func borrowHandler(engine core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Amount string `json:"amount"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := engine.Borrow(r.Context(), caller(r), number.Decimal(params.Amount)); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}

func depositAndBorrowHandler(engine core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			AssetID    string `json:"asset_id"`
			Amount     string `json:"amount"`
			LoanAmount string `json:"loan_amount"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		input := core.CollateralInput{
			AssetID: params.AssetID,
			Amount:  number.Decimal(params.Amount),
		}

		if err := engine.DepositCollateralAndBorrow(r.Context(), caller(r), &input, number.Decimal(params.LoanAmount)); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}

func recalculateHandler(engine core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := engine.RecalculateLoanInterest(r.Context()); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}

func setInterestHandler(engine core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Rate int64 `json:"rate"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := engine.SetLoanInterest(r.Context(), caller(r), params.Rate); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}

func liquidationsHandler(engine core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := engine.CheckLiquidations(r.Context(), caller(r)); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"status": "ok"})
	}
}

func systemHandler(engine core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := engine.Owner(r.Context())
		if err != nil {
			renderErr(w, err)
			return
		}

		rate, err := engine.LoanInterest(r.Context())
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{
			"owner":         owner,
			"loan_interest": rate,
		})
	}
}

func loanHandler(engine core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loan, err := engine.TotalMoneyOnLoanByUser(r.Context(), chi.URLParam(r, "user"))
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"loan": loan})
	}
}

func collateralHandler(engine core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collateral, err := engine.CollateralsByUser(r.Context(), chi.URLParam(r, "user"))
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"collateral": collateral})
	}
}

func accountsHandler(engine core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := engine.Accounts(r.Context())
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"accounts": accounts})
	}
}

func accountHandler(engine core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, err := engine.Account(r.Context(), chi.URLParam(r, "user"))
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, account)
	}
}
