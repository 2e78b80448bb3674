// Utilities for formatting ripple objects in a terminal
package terminal

import (
	"fmt"

	"github.com/anyswap/ripple-signer/data"
	"github.com/anyswap/ripple-signer/websockets"
	"github.com/fatih/color"
)

type Flag uint32

const (
	Indent Flag = 1 << iota
	DoubleIndent
	TripleIndent

	ShowTransactionId
)

var Default Flag

var (
	leStyle      = color.New(color.FgWhite)
	txStyle      = color.New(color.FgGreen)
	signerStyle  = color.New(color.FgYellow, color.Bold)
	pathStyle    = color.New(color.FgYellow)
	resultStyle  = color.New(color.FgBlue)
	infoStyle    = color.New(color.FgRed)
	missingValue = "-"
)

func BoolSymbol(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}

func MemoSymbol(tx data.Object) string {
	memos, _ := tx["Memos"].(data.Array)
	return BoolSymbol(len(memos) > 0)
}

func SignSymbol(tx data.Object) string {
	return BoolSymbol(data.CheckSignature(tx) == nil)
}

type bundle struct {
	color  *color.Color
	format string
	values []interface{}
	flag   Flag
}

func field(obj data.Object, name string) interface{} {
	v, ok := obj[name]
	if !ok || v == nil {
		return missingValue
	}
	return v
}

func amount(obj data.Object, name string) *data.Amount {
	switch a := obj[name].(type) {
	case *data.Amount:
		return a
	case data.Amount:
		return &a
	default:
		return nil
	}
}

func ratio(obj data.Object, num, den string) interface{} {
	a, b := amount(obj, num), amount(obj, den)
	if a == nil || b == nil || a.Value == nil || b.Value == nil {
		return missingValue
	}
	return a.Ratio(*b)
}

func newLeBundle(le data.Object, typ data.LedgerEntryType, flag Flag) *bundle {
	var (
		format = "%-11s "
		values = []interface{}{typ}
	)
	switch typ {
	case data.ACCOUNT_ROOT:
		format += "%-34s %08X %s"
		flags, _ := le["Flags"].(data.UInt32)
		values = append(values, field(le, "Account"), uint32(flags), field(le, "Balance"))
	case data.RIPPLE_STATE:
		format += "%s %s %s"
		values = append(values, field(le, "Balance"), field(le, "HighLimit"), field(le, "LowLimit"))
	case data.OFFER:
		format += "%-34s %-60s %-60s %-18s"
		values = append(values, field(le, "Account"), field(le, "TakerPays"), field(le, "TakerGets"), ratio(le, "TakerPays", "TakerGets"))
	case data.FEE_SETTINGS:
		format += "%s %s %s %s"
		values = append(values, field(le, "BaseFee"), field(le, "ReferenceFeeUnits"), field(le, "ReserveBase"), field(le, "ReserveIncrement"))
	case data.AMENDMENTS:
		format += "%s"
		values = append(values, field(le, "Amendments"))
	default:
		format += "%v"
		values = append(values, le.Names())
	}
	return &bundle{
		color:  leStyle,
		format: format,
		values: values,
		flag:   flag,
	}
}

func newTxBundle(tx data.Object, typ data.TransactionType, flag Flag) (*bundle, error) {
	var (
		format = "%s %-11s %-8s %s %-34s %-9s "
		values = []interface{}{SignSymbol(tx), typ, field(tx, "Fee"), MemoSymbol(tx), field(tx, "Account"), field(tx, "Sequence")}
	)
	if flag&ShowTransactionId > 0 {
		txID, _, err := data.TransactionID(tx)
		if err != nil {
			return nil, err
		}
		format = "%s " + format
		values = append([]interface{}{txID}, values...)
	}
	switch typ {
	case data.PAYMENT:
		format += "=> %-34s %-60s %-60s"
		values = append(values, field(tx, "Destination"), field(tx, "Amount"), field(tx, "SendMax"))
	case data.OFFER_CREATE:
		format += "%-9s %-60s %-60s %-18s"
		values = append(values, field(tx, "OfferSequence"), field(tx, "TakerPays"), field(tx, "TakerGets"), ratio(tx, "TakerPays", "TakerGets"))
	case data.OFFER_CANCEL:
		format += "%-9s"
		values = append(values, field(tx, "OfferSequence"))
	case data.TRUST_SET:
		format += "%-60s %s %s"
		values = append(values, field(tx, "LimitAmount"), field(tx, "QualityIn"), field(tx, "QualityOut"))
	case data.SIGNER_LIST_SET:
		format += "%s %d signers"
		entries, _ := tx["SignerEntries"].(data.Array)
		values = append(values, field(tx, "SignerQuorum"), len(entries))
	}
	if signers, ok := tx["Signers"].(data.Array); ok {
		format += " multisigned by %d"
		values = append(values, len(signers))
	}
	return &bundle{
		color:  txStyle,
		format: format,
		values: values,
		flag:   flag,
	}, nil
}

func newObjectBundle(obj data.Object, flag Flag) (*bundle, error) {
	if typ, ok := obj["TransactionType"].(data.UInt16); ok {
		return newTxBundle(obj, data.TransactionType(typ), flag)
	}
	if typ, ok := obj["LedgerEntryType"].(data.UInt16); ok {
		return newLeBundle(obj, data.LedgerEntryType(typ), flag), nil
	}
	if signer, ok := obj["Signer"].(data.Object); ok && len(obj) == 1 {
		return &bundle{
			color:  signerStyle,
			format: "Signer: %-34s %s",
			values: []interface{}{field(signer, "Account"), field(signer, "SigningPubKey")},
			flag:   flag,
		}, nil
	}
	return &bundle{
		color:  infoStyle,
		format: "%s",
		values: []interface{}{obj},
		flag:   flag,
	}, nil
}

func newBundle(value interface{}, flag Flag) (*bundle, error) {
	switch v := value.(type) {
	case data.Object:
		return newObjectBundle(v, flag)
	case *data.SignedTransaction:
		return &bundle{
			color:  txStyle,
			format: "Signed: %s %X",
			values: []interface{}{v.Hash, v.Blob},
			flag:   flag,
		}, nil
	case *websockets.SubmitResult:
		style := resultStyle
		if !v.Accepted() {
			style = infoStyle
		}
		return &bundle{
			color:  style,
			format: "Submit: %s %-16s %s",
			values: []interface{}{BoolSymbol(v.Accepted()), v.EngineResult, v.EngineResultMessage},
			flag:   flag,
		}, nil
	case data.Path:
		sig, err := v.Signature()
		if err != nil {
			return nil, err
		}
		return &bundle{
			color:  pathStyle,
			format: "Path: %08X %s",
			values: []interface{}{sig, v.String()},
			flag:   flag,
		}, nil
	default:
		return &bundle{
			color:  infoStyle,
			format: "%v",
			values: []interface{}{v},
			flag:   flag,
		}, nil
	}
}

func indent(flag Flag) string {
	switch {
	case flag&Indent > 0:
		return "    "
	case flag&DoubleIndent > 0:
		return "        "
	case flag&TripleIndent > 0:
		return "           "
	default:
		return ""
	}
}

func println(value interface{}, flag Flag) (int, error) {
	b, err := newBundle(value, flag)
	if err != nil {
		return 0, err
	}
	return b.color.Printf(indent(flag)+b.format+"\n", b.values...)
}

func Println(value interface{}, flag Flag) {
	if _, err := println(value, flag); err != nil {
		_, _ = infoStyle.Println(err.Error())
	}
}

func Sprint(value interface{}, flag Flag) string {
	b, err := newBundle(value, flag)
	if err != nil {
		return fmt.Sprintf("Cannot format: %+v", value)
	}
	return b.color.SprintfFunc()(indent(flag)+b.format, b.values...)
}
