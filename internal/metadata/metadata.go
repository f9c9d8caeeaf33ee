package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tokenmart/market-ledger/internal/entity"
)

var ErrInvalidTokenUri = errors.New("invalid token uri")

// Service fetches the off-ledger JSON document a token's uri points at.
type Service interface {
	GetMetadata(item entity.MarketItem) (map[string]interface{}, error)
}

type service struct {
	client *retryablehttp.Client
}

func NewMetadataService(client *retryablehttp.Client) Service {
	return service{client}
}

func (s service) GetMetadata(item entity.MarketItem) (map[string]interface{}, error) {
	if !strings.HasPrefix(item.TokenUri, "http") {
		return nil, ErrInvalidTokenUri
	}

	resp, err := s.client.Get(item.TokenUri)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, errors.New(resp.Status)
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}

	var md map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &md); err != nil {
		return nil, err
	}

	return md, nil
}
