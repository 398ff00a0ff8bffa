// Package ofx parses OFX/QFX bank exports into transaction drafts ready
// for upload to the backend.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/JenishBhuju/Clarity/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocess fixes common formatting issues in OFX files before handing
// them to ofxgo.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR).
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Fix SGML-style opening tags missing their closing bracket.
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns transaction drafts. The
// sign of each OFX amount decides the type: debits become expenses,
// credits become income; the stored amount is always positive.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var drafts []model.Draft
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTx := range stmt.BankTranList.Transactions {
				drafts = append(drafts, p.convert(ofxTx))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTx := range stmt.BankTranList.Transactions {
				drafts = append(drafts, p.convert(ofxTx))
			}
		}
	}

	slog.Info("Parsed OFX file",
		"transactions", len(drafts),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return drafts, nil
}

// convert maps one OFX transaction to a draft.
func (p *Parser) convert(ofxTx ofxgo.Transaction) model.Draft {
	amountFloat, _ := ofxTx.TrnAmt.Float64()

	txType := model.TypeIncome
	if amountFloat < 0 {
		txType = model.TypeExpense
		amountFloat = -amountFloat
	}
	cents := int64(math.Round(amountFloat * 100))

	return model.Draft{
		Type:        txType,
		Amount:      model.FormatCents(cents),
		Category:    inferCategory(ofxTx),
		Description: description(ofxTx),
		Date:        ofxTx.DtPosted.Time.Format(model.DateLayout),
	}
}

// inferCategory guesses a category from the OFX transaction type. OFX has
// no real categories; anything unrecognized lands in "other" and can be
// recategorized after upload.
func inferCategory(tx ofxgo.Transaction) model.Category {
	switch fmt.Sprintf("%v", tx.TrnType) {
	case "INT", "DIV":
		return model.CategoryInvestment
	default:
		return model.CategoryOther
	}
}

// description picks the most informative free-text field available.
func description(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	name := strings.TrimSpace(string(tx.Name))
	if name == "" {
		name = strings.TrimSpace(string(tx.Memo))
	}
	return name
}
