package data

import "fmt"

// Horrible look up tables

type LedgerEntryType uint16
type TransactionType uint16

const (
	// LedgerEntryType values come from rippled's "LedgerFormats.h"
	SIGNER_LIST      LedgerEntryType = 0x53 // 'S'
	TICKET           LedgerEntryType = 0x54 // 'T'
	ACCOUNT_ROOT     LedgerEntryType = 0x61 // 'a'
	DIRECTORY        LedgerEntryType = 0x64 // 'd'
	AMENDMENTS       LedgerEntryType = 0x66 // 'f'
	LEDGER_HASHES    LedgerEntryType = 0x68 // 'h'
	OFFER            LedgerEntryType = 0x6f // 'o'
	RIPPLE_STATE     LedgerEntryType = 0x72 // 'r'
	FEE_SETTINGS     LedgerEntryType = 0x73 // 's'
	ESCROW           LedgerEntryType = 0x75 // 'u'
	PAY_CHANNEL      LedgerEntryType = 0x78 // 'x'
	CHECK            LedgerEntryType = 0x43 // 'C'
	DEPOSIT_PRE_AUTH LedgerEntryType = 0x70 // 'p'
	NEGATIVE_UNL     LedgerEntryType = 0x4e // 'N'

	// TransactionType values come from rippled's "TxFormats.h"
	PAYMENT         TransactionType = 0
	ESCROW_CREATE   TransactionType = 1
	ESCROW_FINISH   TransactionType = 2
	ACCOUNT_SET     TransactionType = 3
	ESCROW_CANCEL   TransactionType = 4
	SET_REGULAR_KEY TransactionType = 5
	OFFER_CREATE    TransactionType = 7
	OFFER_CANCEL    TransactionType = 8
	TICKET_CREATE   TransactionType = 10
	SIGNER_LIST_SET TransactionType = 12
	PAYCHAN_CREATE  TransactionType = 13
	PAYCHAN_FUND    TransactionType = 14
	PAYCHAN_CLAIM   TransactionType = 15
	CHECK_CREATE    TransactionType = 16
	CHECK_CASH      TransactionType = 17
	CHECK_CANCEL    TransactionType = 18
	DEPOSIT_PREAUTH TransactionType = 19
	TRUST_SET       TransactionType = 20
	ACCOUNT_DELETE  TransactionType = 21
	AMENDMENT       TransactionType = 100
	SET_FEE         TransactionType = 101
	UNL_MODIFY      TransactionType = 102
)

var ledgerEntryNames = map[LedgerEntryType]string{
	ACCOUNT_ROOT:     "AccountRoot",
	DIRECTORY:        "DirectoryNode",
	AMENDMENTS:       "Amendments",
	LEDGER_HASHES:    "LedgerHashes",
	OFFER:            "Offer",
	RIPPLE_STATE:     "RippleState",
	FEE_SETTINGS:     "FeeSettings",
	ESCROW:           "Escrow",
	SIGNER_LIST:      "SignerList",
	TICKET:           "Ticket",
	PAY_CHANNEL:      "PayChannel",
	CHECK:            "Check",
	DEPOSIT_PRE_AUTH: "DepositPreauth",
	NEGATIVE_UNL:     "NegativeUNL",
}

var txNames = map[TransactionType]string{
	PAYMENT:         "Payment",
	ESCROW_CREATE:   "EscrowCreate",
	ESCROW_FINISH:   "EscrowFinish",
	ACCOUNT_SET:     "AccountSet",
	ESCROW_CANCEL:   "EscrowCancel",
	SET_REGULAR_KEY: "SetRegularKey",
	OFFER_CREATE:    "OfferCreate",
	OFFER_CANCEL:    "OfferCancel",
	TICKET_CREATE:   "TicketCreate",
	SIGNER_LIST_SET: "SignerListSet",
	PAYCHAN_CREATE:  "PaymentChannelCreate",
	PAYCHAN_FUND:    "PaymentChannelFund",
	PAYCHAN_CLAIM:   "PaymentChannelClaim",
	CHECK_CREATE:    "CheckCreate",
	CHECK_CASH:      "CheckCash",
	CHECK_CANCEL:    "CheckCancel",
	DEPOSIT_PREAUTH: "DepositPreauth",
	TRUST_SET:       "TrustSet",
	ACCOUNT_DELETE:  "AccountDelete",
	AMENDMENT:       "EnableAmendment",
	SET_FEE:         "SetFee",
	UNL_MODIFY:      "UNLModify",
}

var (
	ledgerEntryTypes = reverseLedgerEntryNames()
	txTypes          = reverseTxNames()
)

func reverseLedgerEntryNames() map[string]LedgerEntryType {
	m := make(map[string]LedgerEntryType, len(ledgerEntryNames))
	for typ, name := range ledgerEntryNames {
		m[name] = typ
	}
	return m
}

func reverseTxNames() map[string]TransactionType {
	m := make(map[string]TransactionType, len(txNames))
	for typ, name := range txNames {
		m[name] = typ
	}
	return m
}

func (t TransactionType) String() string {
	if name, ok := txNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TransactionType(%d)", uint16(t))
}

func (le LedgerEntryType) String() string {
	if name, ok := ledgerEntryNames[le]; ok {
		return name
	}
	return fmt.Sprintf("LedgerEntryType(%d)", uint16(le))
}

// ParseTransactionType looks up a transaction type by its rippled name.
func ParseTransactionType(name string) (TransactionType, error) {
	if typ, ok := txTypes[name]; ok {
		return typ, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownTransactionType, name)
}

func ParseLedgerEntryType(name string) (LedgerEntryType, error) {
	if typ, ok := ledgerEntryTypes[name]; ok {
		return typ, nil
	}
	return 0, fmt.Errorf("%w: ledger entry type %s", ErrUnknownField, name)
}

// IsKnown reports whether t has a name.
func (t TransactionType) IsKnown() bool {
	_, ok := txNames[t]
	return ok
}
