package enrichment

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xavierca1/clinic-outreach/internal/entity"
)

// Store é o lookup de enriquecimento: os negócios raspados do Google Maps,
// indexados por email minúsculo. Carrega uma vez no boot e nunca mais muda,
// então é seguro para leitura concorrente sem lock.
type Store struct {
	byEmail map[string]entity.Place
	source  string
}

// Load tenta os caminhos na ordem e usa o primeiro que abrir. Arquivo
// ausente NÃO é erro: o dashboard funciona sem enriquecimento, só perde o
// detalhe do lead e a personalização do preview.
func Load(paths ...string) *Store {
	store := &Store{byEmail: make(map[string]entity.Place)}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var places []entity.Place
		if err := json.Unmarshal(data, &places); err != nil {
			log.Printf("⚠️ Enriquecimento: %s existe mas não é um JSON válido: %v", path, err)
			continue
		}

		for _, p := range places {
			if p.PrimaryEmail == "" {
				continue
			}
			store.byEmail[strings.ToLower(p.PrimaryEmail)] = p
		}
		store.source = path
		log.Printf("📂 Enriquecimento carregado: %d registros de %s", len(store.byEmail), path)
		return store
	}

	log.Printf("⚠️ Nenhum arquivo de enriquecimento encontrado (tentados: %s) — seguindo sem dados locais", strings.Join(paths, ", "))
	return store
}

// Lookup busca por email, case-insensitive. Ausência é caso normal.
func (s *Store) Lookup(email string) (entity.Place, bool) {
	p, ok := s.byEmail[strings.ToLower(email)]
	return p, ok
}

func (s *Store) Len() int {
	return len(s.byEmail)
}

// Describe é o que o health check mostra sobre o lookup.
func (s *Store) Describe() string {
	if s.source == "" {
		return "not loaded"
	}
	return fmt.Sprintf("%d records from %s", len(s.byEmail), s.source)
}
