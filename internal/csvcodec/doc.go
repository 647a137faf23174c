// Package csvcodec converts one vehicle to and from the sectioned CSV text
// used for backups.
//
// The format has four sections, each opened by a "=== NAME ===" marker line:
//
//	=== DATI VEICOLO ===
//	Tipo,Marca,Modello,Anno,Targa,Km Attuali
//	=== REGISTRO CHILOMETRI ===
//	Data,Km,Note
//	=== REGISTRO MANUTENZIONE ===
//	Data,Tipo,Descrizione,Km,Costo
//	=== PROMEMORIA ===
//	Etichetta,Scadenza Data,Scadenza Km
//
// Decoding is lenient: short rows are skipped and unparseable numbers fall
// back to defaults. It yields a Patch rather than a Vehicle so that the
// caller decides which vehicle receives the data.
package csvcodec
