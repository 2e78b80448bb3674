package data

import (
	"fmt"
	"sort"
)

type TypeCode uint8

const (
	ST_UINT16    TypeCode = 1
	ST_UINT32    TypeCode = 2
	ST_UINT64    TypeCode = 3
	ST_HASH128   TypeCode = 4
	ST_HASH256   TypeCode = 5
	ST_AMOUNT    TypeCode = 6
	ST_VL        TypeCode = 7
	ST_ACCOUNT   TypeCode = 8
	ST_OBJECT    TypeCode = 14
	ST_ARRAY     TypeCode = 15
	ST_UINT8     TypeCode = 16
	ST_HASH160   TypeCode = 17
	ST_PATHSET   TypeCode = 18
	ST_VECTOR256 TypeCode = 19
)

var typeNames = map[TypeCode]string{
	ST_UINT16:    "UInt16",
	ST_UINT32:    "UInt32",
	ST_UINT64:    "UInt64",
	ST_HASH128:   "Hash128",
	ST_HASH256:   "Hash256",
	ST_AMOUNT:    "Amount",
	ST_VL:        "Blob",
	ST_ACCOUNT:   "AccountID",
	ST_OBJECT:    "STObject",
	ST_ARRAY:     "STArray",
	ST_UINT8:     "UInt8",
	ST_HASH160:   "Hash160",
	ST_PATHSET:   "PathSet",
	ST_VECTOR256: "Vector256",
}

func (t TypeCode) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Field is one entry of the catalog. Fields are immutable once the catalog
// is built.
type Field struct {
	Name    string
	Type    TypeCode
	Code    uint8
	VL      bool // value carries a variable length prefix
	Signing bool // included in the bytes that get signed
}

type enc struct {
	typ  TypeCode
	code uint8
}

// See rippled's SField.cpp for the strings and corresponding encoding values.
var encodings = map[enc]string{
	// 16-bit unsigned integers (common)
	{ST_UINT16, 1}: "LedgerEntryType",
	{ST_UINT16, 2}: "TransactionType",
	{ST_UINT16, 3}: "SignerWeight",
	{ST_UINT16, 4}: "TransferFee",
	// 16-bit unsigned integers (uncommon)
	{ST_UINT16, 16}: "Version",
	// 32-bit unsigned integers (common)
	{ST_UINT32, 1}:  "NetworkID",
	{ST_UINT32, 2}:  "Flags",
	{ST_UINT32, 3}:  "SourceTag",
	{ST_UINT32, 4}:  "Sequence",
	{ST_UINT32, 5}:  "PreviousTxnLgrSeq",
	{ST_UINT32, 6}:  "LedgerSequence",
	{ST_UINT32, 7}:  "CloseTime",
	{ST_UINT32, 8}:  "ParentCloseTime",
	{ST_UINT32, 9}:  "SigningTime",
	{ST_UINT32, 10}: "Expiration",
	{ST_UINT32, 11}: "TransferRate",
	{ST_UINT32, 12}: "WalletSize",
	{ST_UINT32, 13}: "OwnerCount",
	{ST_UINT32, 14}: "DestinationTag",
	// 32-bit unsigned integers (uncommon)
	{ST_UINT32, 16}: "HighQualityIn",
	{ST_UINT32, 17}: "HighQualityOut",
	{ST_UINT32, 18}: "LowQualityIn",
	{ST_UINT32, 19}: "LowQualityOut",
	{ST_UINT32, 20}: "QualityIn",
	{ST_UINT32, 21}: "QualityOut",
	{ST_UINT32, 22}: "StampEscrow",
	{ST_UINT32, 23}: "BondAmount",
	{ST_UINT32, 24}: "LoadFee",
	{ST_UINT32, 25}: "OfferSequence",
	{ST_UINT32, 26}: "FirstLedgerSequence",
	{ST_UINT32, 27}: "LastLedgerSequence",
	{ST_UINT32, 28}: "TransactionIndex",
	{ST_UINT32, 29}: "OperationLimit",
	{ST_UINT32, 30}: "ReferenceFeeUnits",
	{ST_UINT32, 31}: "ReserveBase",
	{ST_UINT32, 32}: "ReserveIncrement",
	{ST_UINT32, 33}: "SetFlag",
	{ST_UINT32, 34}: "ClearFlag",
	{ST_UINT32, 35}: "SignerQuorum",
	{ST_UINT32, 36}: "CancelAfter",
	{ST_UINT32, 37}: "FinishAfter",
	{ST_UINT32, 38}: "SignerListID",
	{ST_UINT32, 39}: "SettleDelay",
	{ST_UINT32, 40}: "TicketCount",
	{ST_UINT32, 41}: "TicketSequence",
	// 64-bit unsigned integers (common)
	{ST_UINT64, 1}:  "IndexNext",
	{ST_UINT64, 2}:  "IndexPrevious",
	{ST_UINT64, 3}:  "BookNode",
	{ST_UINT64, 4}:  "OwnerNode",
	{ST_UINT64, 5}:  "BaseFee",
	{ST_UINT64, 6}:  "ExchangeRate",
	{ST_UINT64, 7}:  "LowNode",
	{ST_UINT64, 8}:  "HighNode",
	{ST_UINT64, 9}:  "DestinationNode",
	{ST_UINT64, 10}: "Cookie",
	{ST_UINT64, 11}: "ServerVersion",
	// 128-bit (common)
	{ST_HASH128, 1}: "EmailHash",
	// 256-bit (common)
	{ST_HASH256, 1}: "LedgerHash",
	{ST_HASH256, 2}: "ParentHash",
	{ST_HASH256, 3}: "TransactionHash",
	{ST_HASH256, 4}: "AccountHash",
	{ST_HASH256, 5}: "PreviousTxnID",
	{ST_HASH256, 6}: "LedgerIndex",
	{ST_HASH256, 7}: "WalletLocator",
	{ST_HASH256, 8}: "RootIndex",
	{ST_HASH256, 9}: "AccountTxnID",
	// 256-bit (uncommon)
	{ST_HASH256, 16}: "BookDirectory",
	{ST_HASH256, 17}: "InvoiceID",
	{ST_HASH256, 18}: "Nickname",
	{ST_HASH256, 19}: "Amendment",
	{ST_HASH256, 20}: "TicketID",
	{ST_HASH256, 21}: "Digest",
	{ST_HASH256, 22}: "Channel",
	{ST_HASH256, 23}: "ConsensusHash",
	{ST_HASH256, 24}: "CheckID",
	{ST_HASH256, 25}: "ValidatedHash",
	// currency amount (common)
	{ST_AMOUNT, 1}:  "Amount",
	{ST_AMOUNT, 2}:  "Balance",
	{ST_AMOUNT, 3}:  "LimitAmount",
	{ST_AMOUNT, 4}:  "TakerPays",
	{ST_AMOUNT, 5}:  "TakerGets",
	{ST_AMOUNT, 6}:  "LowLimit",
	{ST_AMOUNT, 7}:  "HighLimit",
	{ST_AMOUNT, 8}:  "Fee",
	{ST_AMOUNT, 9}:  "SendMax",
	{ST_AMOUNT, 10}: "DeliverMin",
	// currency amount (uncommon)
	{ST_AMOUNT, 16}: "MinimumOffer",
	{ST_AMOUNT, 17}: "RippleEscrow",
	{ST_AMOUNT, 18}: "DeliveredAmount",
	// variable length (common)
	{ST_VL, 1}:  "PublicKey",
	{ST_VL, 2}:  "MessageKey",
	{ST_VL, 3}:  "SigningPubKey",
	{ST_VL, 4}:  "TxnSignature",
	{ST_VL, 5}:  "Generator",
	{ST_VL, 6}:  "Signature",
	{ST_VL, 7}:  "Domain",
	{ST_VL, 8}:  "FundCode",
	{ST_VL, 9}:  "RemoveCode",
	{ST_VL, 10}: "ExpireCode",
	{ST_VL, 11}: "CreateCode",
	{ST_VL, 12}: "MemoType",
	{ST_VL, 13}: "MemoData",
	{ST_VL, 14}: "MemoFormat",
	// variable length (uncommon)
	{ST_VL, 16}: "Fulfillment",
	{ST_VL, 17}: "Condition",
	{ST_VL, 18}: "MasterSignature",
	// account
	{ST_ACCOUNT, 1}: "Account",
	{ST_ACCOUNT, 2}: "Owner",
	{ST_ACCOUNT, 3}: "Destination",
	{ST_ACCOUNT, 4}: "Issuer",
	{ST_ACCOUNT, 5}: "Authorize",
	{ST_ACCOUNT, 6}: "Unauthorize",
	{ST_ACCOUNT, 7}: "Target",
	{ST_ACCOUNT, 8}: "RegularKey",
	// inner object
	{ST_OBJECT, 1}:  "EndOfObject",
	{ST_OBJECT, 2}:  "TransactionMetaData",
	{ST_OBJECT, 3}:  "CreatedNode",
	{ST_OBJECT, 4}:  "DeletedNode",
	{ST_OBJECT, 5}:  "ModifiedNode",
	{ST_OBJECT, 6}:  "PreviousFields",
	{ST_OBJECT, 7}:  "FinalFields",
	{ST_OBJECT, 8}:  "NewFields",
	{ST_OBJECT, 9}:  "TemplateEntry",
	{ST_OBJECT, 10}: "Memo",
	{ST_OBJECT, 11}: "SignerEntry",
	// inner object (uncommon)
	{ST_OBJECT, 16}: "Signer",
	{ST_OBJECT, 18}: "Majority",
	{ST_OBJECT, 19}: "DisabledValidator",
	// array of objects
	{ST_ARRAY, 1}: "EndOfArray",
	{ST_ARRAY, 2}: "SigningAccounts",
	{ST_ARRAY, 3}: "Signers",
	{ST_ARRAY, 4}: "SignerEntries",
	{ST_ARRAY, 5}: "Template",
	{ST_ARRAY, 6}: "Necessary",
	{ST_ARRAY, 7}: "Sufficient",
	{ST_ARRAY, 8}: "AffectedNodes",
	{ST_ARRAY, 9}: "Memos",
	// array of objects (uncommon)
	{ST_ARRAY, 16}: "Majorities",
	{ST_ARRAY, 17}: "DisabledValidators",
	// 8-bit unsigned integers (common)
	{ST_UINT8, 1}: "CloseResolution",
	{ST_UINT8, 2}: "Method",
	{ST_UINT8, 3}: "TransactionResult",
	// 8-bit unsigned integers (uncommon)
	{ST_UINT8, 16}: "TickSize",
	// 160-bit (common)
	{ST_HASH160, 1}: "TakerPaysCurrency",
	{ST_HASH160, 2}: "TakerPaysIssuer",
	{ST_HASH160, 3}: "TakerGetsCurrency",
	{ST_HASH160, 4}: "TakerGetsIssuer",
	// path set
	{ST_PATHSET, 1}: "Paths",
	// vector of 256-bit
	{ST_VECTOR256, 1}: "Indexes",
	{ST_VECTOR256, 2}: "Hashes",
	{ST_VECTOR256, 3}: "Amendments",
}

// Excluded from the signing serialization when they appear at the top level.
var nonSigningFields = map[string]struct{}{
	"TxnSignature":    {},
	"Signature":       {},
	"MasterSignature": {},
	"Signers":         {},
}

var (
	catalog, fieldsByName, fieldsByCode = buildCatalog()

	endOfObject = fieldsByName["EndOfObject"]
	endOfArray  = fieldsByName["EndOfArray"]
)

// buildCatalog runs as a var initializer, so package level callers of
// LookupByName see a complete catalog.
func buildCatalog() ([]Field, map[string]*Field, map[enc]*Field) {
	byCode := make(map[enc]*Field, len(encodings))
	byName := make(map[string]*Field, len(encodings))
	fields := make([]Field, 0, len(encodings))
	for e, name := range encodings {
		_, nonSigning := nonSigningFields[name]
		fields = append(fields, Field{
			Name:    name,
			Type:    e.typ,
			Code:    e.code,
			VL:      e.typ == ST_VL || e.typ == ST_ACCOUNT || e.typ == ST_VECTOR256,
			Signing: !nonSigning,
		})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Less(&fields[j]) })
	for i := range fields {
		f := &fields[i]
		if _, dup := byName[f.Name]; dup {
			panic("duplicate field name: " + f.Name)
		}
		byCode[enc{f.Type, f.Code}] = f
		byName[f.Name] = f
	}
	return fields, byName, byCode
}

// LookupByName returns the catalog entry for name.
func LookupByName(name string) (*Field, error) {
	if f, ok := fieldsByName[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
}

// LookupByCode returns the catalog entry for a (type, field) code pair.
func LookupByCode(typ TypeCode, code uint8) (*Field, error) {
	if f, ok := fieldsByCode[enc{typ, code}]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: type %d field %d", ErrUnknownField, typ, code)
}

// CompareFields orders by type code, then field code. This is the canonical
// serialization order.
func CompareFields(a, b *Field) int {
	pa, pb := a.Priority(), b.Priority()
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	default:
		return 0
	}
}

// Fields returns a copy of the catalog in canonical order.
func Fields() []Field {
	fields := make([]Field, len(catalog))
	copy(fields, catalog)
	return fields
}

func (f *Field) Priority() uint32 {
	return uint32(f.Type)<<16 | uint32(f.Code)
}

func (f *Field) Less(other *Field) bool {
	return CompareFields(f, other) < 0
}

func (f *Field) IsTerminator() bool {
	return f == endOfObject || f == endOfArray
}

// Header returns the one to three byte field identifier.
func (f *Field) Header() []byte {
	typ, code := uint8(f.Type), f.Code
	switch {
	case typ < 16 && code < 16:
		return []byte{typ<<4 | code}
	case typ < 16:
		return []byte{typ << 4, code}
	case code < 16:
		return []byte{code, typ}
	default:
		return []byte{0, typ, code}
	}
}

func (f *Field) String() string {
	return fmt.Sprintf("%s(%s:%d)", f.Name, f.Type, f.Code)
}
