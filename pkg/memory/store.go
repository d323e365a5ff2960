// Package memory provides the qdrant-backed vector store agents use to
// persist and recall cross-task knowledge.
package memory

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/embedding"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
)

// Memory is one stored agent memory with its recall score.
type Memory struct {
	ID         string         `json:"id"`
	Content    string         `json:"content"`
	MemoryType string         `json:"memory_type"`
	Tags       []string       `json:"tags"`
	AgentID    string         `json:"agent_id,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	Score      float64        `json:"score,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Store wraps a qdrant collection of embedded agent memories.
type Store struct {
	client     *qdrant.Client
	embedder   embedding.Embedder
	collection string
}

// NewStore connects to qdrant and ensures the collection exists.
func NewStore(ctx context.Context, cfg *config.MemoryConfig, embedder embedding.Embedder) (*Store, error) {
	apiKey := ""
	if cfg.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.APIKeyEnv)
	}
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: apiKey,
		UseTLS: cfg.UseTLS,
		GrpcOptions: []grpc.DialOption{
			// Fail fast when qdrant is down instead of stalling tool calls.
			grpc.WithConnectParams(grpc.ConnectParams{MinConnectTimeout: 5 * time.Second}),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	s := &Store{
		client:     client,
		embedder:   embedder,
		collection: cfg.Collection,
	}
	if err := s.ensureCollection(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureCollection(ctx context.Context) error {
	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		return nil
	}
	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(s.embedder.Dimension()),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		// Another process may have created it between the check and here.
		if strings.Contains(err.Error(), "already exists") {
			return nil
		}
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

// Save embeds content and upserts it as a new memory point.
func (s *Store) Save(ctx context.Context, agentID, content, memoryType string, tags []string) (*Memory, error) {
	if content == "" {
		return nil, fmt.Errorf("memory content is empty")
	}
	vector, err := s.embedder.Embed(ctx, content)
	if err != nil {
		return nil, err
	}

	m := &Memory{
		ID:         uuid.New().String(),
		Content:    content,
		MemoryType: memoryType,
		Tags:       tags,
		AgentID:    agentID,
		CreatedAt:  time.Now(),
	}

	payload := map[string]any{
		"content":     m.Content,
		"memory_type": m.MemoryType,
		"agent_id":    m.AgentID,
		"created_at":  m.CreatedAt.Format(time.RFC3339),
	}
	if len(tags) > 0 {
		tagValues := make([]any, len(tags))
		for i, t := range tags {
			tagValues[i] = t
		}
		payload["tags"] = tagValues
	}

	qdrantPayload := make(map[string]*qdrant.Value, len(payload))
	for key, value := range payload {
		val, err := qdrant.NewValue(value)
		if err != nil {
			return nil, fmt.Errorf("failed to convert payload value for %s: %w", key, err)
		}
		qdrantPayload[key] = val
	}

	_, err = s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points: []*qdrant.PointStruct{{
			Id:      qdrant.NewID(m.ID),
			Vectors: qdrant.NewVectors(vector...),
			Payload: qdrantPayload,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert memory: %w", err)
	}
	return m, nil
}

// Find embeds the query and returns the nearest memories by cosine
// similarity.
func (s *Store) Find(ctx context.Context, query string, limit int) ([]*Memory, error) {
	if limit <= 0 {
		limit = 5
	}
	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	points, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query memories: %w", err)
	}

	memories := make([]*Memory, 0, len(points))
	for _, p := range points {
		m := &Memory{Score: float64(p.Score)}
		if p.Id != nil {
			if u, ok := p.Id.PointIdOptions.(*qdrant.PointId_Uuid); ok {
				m.ID = u.Uuid
			} else if n, ok := p.Id.PointIdOptions.(*qdrant.PointId_Num); ok {
				m.ID = fmt.Sprintf("%d", n.Num)
			}
		}
		for key, value := range p.Payload {
			switch key {
			case "content":
				m.Content = value.GetStringValue()
			case "memory_type":
				m.MemoryType = value.GetStringValue()
			case "agent_id":
				m.AgentID = value.GetStringValue()
			case "created_at":
				if t, err := time.Parse(time.RFC3339, value.GetStringValue()); err == nil {
					m.CreatedAt = t
				}
			case "tags":
				if list := value.GetListValue(); list != nil {
					for _, v := range list.Values {
						m.Tags = append(m.Tags, v.GetStringValue())
					}
				}
			}
		}
		memories = append(memories, m)
	}
	return memories, nil
}

// Close releases the qdrant connection.
func (s *Store) Close() error {
	return s.client.Close()
}
