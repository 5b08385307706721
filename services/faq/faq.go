package faq

import (
	"context"
	"fmt"
	"sort"
	"strings"

	clinicinfoRepo "clinicflow/database/repository/clinicinfo"
	"clinicflow/utils"

	"go.uber.org/zap"
)

// FAQService answers clinic-information questions. Answer never fails:
// when nothing matches, or the repository is unreachable, it falls back
// to a generic listing.
type FAQService interface {
	Answer(ctx context.Context, query string) string
}

type DefaultFAQService struct {
	Repo clinicinfoRepo.ClinicInfoRepository
}

func NewDefaultFAQService(repo clinicinfoRepo.ClinicInfoRepository) *DefaultFAQService {
	return &DefaultFAQService{Repo: repo}
}

// Answer matches the query against stored topics: a topic matches when
// its full name appears in the query, or when any token of the topic
// name does. Falls back to listing every topic.
func (s *DefaultFAQService) Answer(ctx context.Context, query string) string {
	docs, err := s.Repo.GetAll(ctx)
	if err != nil {
		utils.GetLogger().Warn("faq: failed to load clinic info", zap.Error(err))
		return "Here's some clinic information:\n(please call the clinic for details)"
	}
	// Stable ordering for the fallback listing.
	sort.Slice(docs, func(i, j int) bool { return docs[i].Topic < docs[j].Topic })

	q := strings.ToLower(query)
	for _, doc := range docs {
		topic := strings.ToLower(doc.Topic)
		if strings.Contains(q, topic) {
			return doc.Answer
		}
		for _, tok := range strings.Fields(topic) {
			if strings.Contains(q, tok) {
				return doc.Answer
			}
		}
	}

	var b strings.Builder
	b.WriteString("Here's some clinic information:")
	for _, doc := range docs {
		fmt.Fprintf(&b, "\n- %s: %s", doc.Topic, doc.Answer)
	}
	return b.String()
}
