package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/meridianfx/deskd/internal/tabular"
	"github.com/meridianfx/deskd/pkg/errors"
	"github.com/meridianfx/deskd/pkg/metrics"
	"github.com/meridianfx/deskd/pkg/models"
)

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	return strings.TrimPrefix(h, "Bearer ")
}

// tableQuery is the common query surface of every table endpoint.
type tableQuery struct {
	Sort      string `form:"sort"`
	Ascending bool   `form:"ascending,default=true"`
	Status    string `form:"status"`
	TZ        string `form:"tz"`
}

func (s *Server) writeError(c *gin.Context, err error) {
	switch errors.KindOf(err) {
	case errors.KindBadRequest:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.KindTransport:
		s.logger.Error("upstream failure", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		s.logger.Error("internal failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// formatter builds the viewer's Formatter from the tz query param and the
// cached currency display scales. An unknown timezone renders in UTC.
func (s *Server) formatter(c *gin.Context, token, tz string) (tabular.Formatter, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil || tz == "" {
		loc = time.UTC
	}
	scales, err := s.refdata.DisplayScales(c.Request.Context(), token)
	if err != nil {
		return tabular.Formatter{}, err
	}
	return tabular.NewFormatter(loc, scales), nil
}

func (s *Server) handleLoans(c *gin.Context) {
	rows, err := s.loanRows(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (s *Server) handleLoansExport(c *gin.Context) {
	rows, err := s.loanRows(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	metrics.CSVExports.WithLabelValues("loans").Inc()
	writeCSV(c, "loans.csv", tabular.ToCSV(rows, tabular.LoanHeader))
}

func (s *Server) loanRows(c *gin.Context) ([]tabular.LoanRow, error) {
	var q tableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return nil, errors.Wrap(err, errors.KindBadRequest, "bad query")
	}
	token := bearerToken(c)

	loans, err := s.data.Loans(c.Request.Context(), token)
	if err != nil {
		return nil, err
	}
	f, err := s.formatter(c, token, q.TZ)
	if err != nil {
		return nil, err
	}

	var filter func(models.Loan) bool
	if q.Status != "" {
		filter = func(l models.Loan) bool { return l.Status == q.Status }
	}
	rows := tabular.ExtractLoans(loans, f, filter)
	return tabular.Sort(rows, q.Ascending, q.Sort, tabular.LoanColumns), nil
}

func (s *Server) handleTransfers(c *gin.Context) {
	rows, err := s.transferRows(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (s *Server) handleTransfersExport(c *gin.Context) {
	rows, err := s.transferRows(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	metrics.CSVExports.WithLabelValues("transfers").Inc()
	writeCSV(c, "transfers.csv", tabular.ToCSV(rows, tabular.TransferHeader))
}

func (s *Server) transferRows(c *gin.Context) ([]tabular.TransferRow, error) {
	var q tableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return nil, errors.Wrap(err, errors.KindBadRequest, "bad query")
	}
	token := bearerToken(c)

	transfers, err := s.data.Transfers(c.Request.Context(), token)
	if err != nil {
		return nil, err
	}
	f, err := s.formatter(c, token, q.TZ)
	if err != nil {
		return nil, err
	}

	var filter func(models.WalletTransfer) bool
	if q.Status != "" {
		filter = func(t models.WalletTransfer) bool { return t.Status == q.Status }
	}
	rows := tabular.ExtractTransfers(transfers, f, filter)
	return tabular.Sort(rows, q.Ascending, q.Sort, tabular.TransferColumns), nil
}

func (s *Server) handleQuotes(c *gin.Context) {
	rows, err := s.quoteRows(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (s *Server) handleQuotesExport(c *gin.Context) {
	rows, err := s.quoteRows(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	metrics.CSVExports.WithLabelValues("quotes").Inc()
	writeCSV(c, "quotes.csv", tabular.ToCSV(rows, tabular.QuoteHeader))
}

func (s *Server) quoteRows(c *gin.Context) ([]tabular.QuoteRow, error) {
	var q tableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return nil, errors.Wrap(err, errors.KindBadRequest, "bad query")
	}
	token := bearerToken(c)

	quotes, err := s.data.Quotes(c.Request.Context(), token)
	if err != nil {
		return nil, err
	}
	f, err := s.formatter(c, token, q.TZ)
	if err != nil {
		return nil, err
	}

	var filter func(models.Quote) bool
	if q.Status != "" {
		filter = func(quote models.Quote) bool { return quote.Status == q.Status }
	}
	rows := tabular.ExtractQuotes(quotes, f, filter)
	return tabular.Sort(rows, q.Ascending, q.Sort, tabular.QuoteColumns), nil
}

func (s *Server) handlePositionRisk(c *gin.Context) {
	counterparty := c.Query("counterparty")
	pair := c.Query("pair")
	if counterparty == "" || pair == "" {
		s.writeError(c, errors.New(errors.KindBadRequest, "counterparty and pair are required"))
		return
	}

	positions, err := s.risk.EnrichedPositions(c.Request.Context(), counterparty, pair, bearerToken(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": positions})
}

func writeCSV(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}
