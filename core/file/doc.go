// Package file provides upload helpers for office documents backed by an
// injected object-storage collaborator: validation against a size limit and
// a MIME allow-list, collision-resistant key generation, upload and delete
// pass-throughs, plus display formatting and extension-based MIME inference.
//
// The package is a thin convenience layer. Durability, consistency and
// access control are entirely the storage provider's responsibility; every
// operation here is a single provider call with no retries and no local
// state.
//
// Typical flow in an HTTP handler:
//
//	svc := file.New(store, file.WithLogger(log))
//
//	f, err := file.FromMultipart(header)
//	if err != nil {
//		http.Error(w, "bad upload", http.StatusBadRequest)
//		return
//	}
//
//	if v := file.Validate(f); !v.Valid {
//		// v.Error is ready to show to the end user
//		http.Error(w, v.Error, http.StatusBadRequest)
//		return
//	}
//
//	res, err := svc.Upload(r.Context(), f, "proposals")
//	if err != nil {
//		http.Error(w, "upload failed", http.StatusBadGateway)
//		return
//	}
//	// res.URL is publicly retrievable, res.Path deletes it later
//
// Validation is returned as data rather than an error because its message is
// user-facing by contract; only provider failures surface as errors.
package file
