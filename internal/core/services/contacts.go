package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/contacts-cli/internal/compression"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contacts-cli/internal/logger"
)

// Ensure ContactService implements the interface.
var _ driving.ContactService = (*ContactService)(nil)

// DefaultExportName is the base name of exported payloads.
const DefaultExportName = "address_book"

// ContactService manages the address book on top of a contact store,
// delegating filtering and encoding to the dispatcher.
type ContactService struct {
	store       driven.ContactStore
	dispatcher  driving.Dispatcher
	sink        driven.ExportSink
	compression domain.Compression
	exportName  string
}

// NewContactService creates a new contact service.
func NewContactService(store driven.ContactStore, dispatcher driving.Dispatcher) *ContactService {
	return &ContactService{
		store:       store,
		dispatcher:  dispatcher,
		compression: domain.CompressionNone,
		exportName:  DefaultExportName,
	}
}

// SetExportSink sets the destination used by Export.
func (s *ContactService) SetExportSink(sink driven.ExportSink) {
	s.sink = sink
}

// SetCompression sets the compression applied to exported payloads.
func (s *ContactService) SetCompression(c domain.Compression) {
	s.compression = c
}

// SetExportName overrides the base name of exported payloads.
// An empty name restores DefaultExportName.
func (s *ContactService) SetExportName(name string) {
	if name == "" {
		name = DefaultExportName
	}
	s.exportName = name
}

// Add stores a new contact.
func (s *ContactService) Add(ctx context.Context, contact domain.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	if err := s.store.Add(ctx, contact); err != nil {
		return fmt.Errorf("add contact %q: %w", contact.Name, err)
	}
	logger.Debug("Added contact %q", contact.Name)
	return nil
}

// List returns every contact in insertion order.
func (s *ContactService) List(ctx context.Context) (domain.Collection, error) {
	contacts, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Search returns the contacts matching query. Query errors are returned
// unwrapped.
func (s *ContactService) Search(ctx context.Context, query string) (domain.Collection, error) {
	contacts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	matched, err := s.dispatcher.Filter(contacts, query)
	if err != nil {
		return nil, err
	}
	logger.Debug("Query %q matched %d of %d contacts", query, len(matched), len(contacts))
	return matched, nil
}

// Update applies changes to the single contact matching query.
func (s *ContactService) Update(
	ctx context.Context, query string, changes map[domain.Field]string,
) (domain.Contact, error) {
	if len(changes) == 0 {
		return domain.Contact{}, fmt.Errorf("%w: no changes given", domain.ErrInvalidInput)
	}

	matched, err := s.Search(ctx, query)
	if err != nil {
		return domain.Contact{}, err
	}
	switch len(matched) {
	case 0:
		return domain.Contact{}, fmt.Errorf("no contact matches %q: %w", query, domain.ErrNotFound)
	case 1:
	default:
		return domain.Contact{}, fmt.Errorf("%d contacts match %q: %w", len(matched), query, domain.ErrAmbiguous)
	}

	old := matched[0]
	updated := old
	for field, value := range changes {
		if !field.IsValid() {
			return domain.Contact{}, fmt.Errorf("%w: unknown field %q", domain.ErrInvalidInput, field)
		}
		updated = updated.With(field, value)
	}
	if err := updated.Validate(); err != nil {
		return domain.Contact{}, err
	}
	if updated == old {
		return old, nil
	}

	if err := s.store.Replace(ctx, old, updated); err != nil {
		return domain.Contact{}, fmt.Errorf("update contact %q: %w", old.Name, err)
	}
	logger.Debug("Updated contact %q", updated.Name)
	return updated, nil
}

// Remove deletes every contact matching a non-empty query.
func (s *ContactService) Remove(ctx context.Context, query string) (int, error) {
	if strings.TrimSpace(query) == "" {
		return 0, fmt.Errorf("%w: refusing to remove with an empty query", domain.ErrInvalidInput)
	}

	matched, err := s.Search(ctx, query)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, c := range matched {
		err := s.store.Delete(ctx, c)
		if errors.Is(err, domain.ErrNotFound) {
			// Duplicates in the match set collapse to one stored row.
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("remove contact %q: %w", c.Name, err)
		}
		removed++
	}
	logger.Debug("Removed %d contacts matching %q", removed, query)
	return removed, nil
}

// Import decodes data and adds its contacts, skipping those already stored.
func (s *ContactService) Import(ctx context.Context, data []byte, format string) (domain.ImportResult, error) {
	var result domain.ImportResult

	contacts, err := s.dispatcher.Deserialize(data, format)
	if err != nil {
		return result, err
	}
	for i, c := range contacts {
		if err := c.Validate(); err != nil {
			return result, fmt.Errorf("import record %d: %w", i, err)
		}
	}

	for _, c := range contacts {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		err := s.store.Add(ctx, c)
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			result.Skipped++
		case err != nil:
			return result, fmt.Errorf("import contact %q: %w", c.Name, err)
		default:
			result.Added++
		}
	}

	logger.Debug("Imported %d contacts from %s (%d skipped)", result.Added, format, result.Skipped)
	return result, nil
}

// Export encodes the contacts matching query once per format, in parallel,
// and writes each payload to the export sink. Results follow the order of
// formats. The first failure cancels the remaining writes.
func (s *ContactService) Export(ctx context.Context, query string, formats []string) ([]domain.Export, error) {
	if s.sink == nil {
		return nil, errors.New("export sink not configured")
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("%w: no export formats given", domain.ErrInvalidInput)
	}
	formats = uniqueFormats(formats)

	contacts, err := s.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	logger.Section("Export")
	results := make([]domain.Export, len(formats))

	g, gctx := errgroup.WithContext(ctx)
	for i, format := range formats {
		g.Go(func() error {
			exp, err := s.exportOne(gctx, contacts, format)
			if err != nil {
				return err
			}
			results[i] = exp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// uniqueFormats drops repeated format names, keeping first occurrences.
// Names are compared case-insensitively, like registry lookups.
func uniqueFormats(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		key := strings.ToLower(strings.TrimSpace(f))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}
	return out
}

func (s *ContactService) exportOne(ctx context.Context, contacts domain.Collection, format string) (domain.Export, error) {
	info, err := s.dispatcher.Describe(format)
	if err != nil {
		return domain.Export{}, err
	}

	data, err := s.dispatcher.Serialize(contacts, format)
	if err != nil {
		return domain.Export{}, err
	}

	packed, err := compression.Compress(s.compression, data)
	if err != nil {
		return domain.Export{}, fmt.Errorf("compress %s export: %w", info.ID, err)
	}

	key := s.exportName + info.Extension + s.compression.Extension()
	location, err := s.sink.Write(ctx, driven.ExportRequest{
		Key:         key,
		Data:        packed,
		ContentType: info.MediaType,
	})
	if err != nil {
		return domain.Export{}, fmt.Errorf("write %s export: %w", info.ID, err)
	}

	logger.Debug("Exported %d contacts as %s to %s (%d bytes)", len(contacts), info.ID, location, len(packed))
	return domain.Export{
		Format:   info.ID,
		Key:      location,
		Contacts: len(contacts),
		Bytes:    len(packed),
	}, nil
}
