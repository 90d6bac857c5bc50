package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk   APIStatus = "ok"
	APIStatusDown APIStatus = "down"

	CachePrefixYearCode   CachePrefix = "AARSMODELL_"
	CachePrefixModelCode  CachePrefix = "BILMODELL_"
	CachePrefixColor      CachePrefix = "FARGE_"
	CachePrefixColorTable CachePrefix = "FARGER_ALLE"
)

// Response messages kept in Norwegian to match the client contract.
const (
	MsgMissingVIN        = "VIN mangler"
	MsgInvalidVIN        = "VIN mangler eller er ugyldig"
	MsgMissingColorParam = "Mangler farge_tysk"
	MsgMissingCodeParam  = "Manglende kode"
	MsgInvalidRequest    = "Ugyldig forespørsel"

	MsgVehicleFetchFailed = "Feil ved henting av biler"
	MsgVehicleNotFound    = "Bil ikke funnet"
	MsgYearNotFound       = "Fant ikke arsmodell"
	MsgYearNotFoundForVIN = "Fant ikke årsmodell for VIN"
	MsgModelNotFound      = "Bilmodell ikke funnet for VIN"
	MsgColorNotFound      = "Fant ikke norsk farge"
	MsgColorTableFailed   = "Feil ved henting av fargetabell"
	MsgRegistryNotFound   = "Fant ikke SVV-data"
	MsgFullViewNotFound   = "Fant ikke data i bilvisning_full_view"
	MsgDocumentLinkFailed = "Feil ved generering av TÜV-link"
	MsgVATFailed          = "Feil i MVA-funksjon"

	// Fallback equipment description when neither language has one.
	DescriptionMissing = "Beskrivelse mangler"
)
