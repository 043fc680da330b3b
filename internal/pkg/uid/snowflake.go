package uid

import (
	"hash/fnv"
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates time-ordered int64 identifiers.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a generator whose node number comes from the
// SNOWFLAKE_NODE env var, falling back to a hash of the hostname so
// replicas get distinct nodes without extra configuration.
func NewSnowflake() (*Snowflake, error) {
	var nodeNum int64

	if v := os.Getenv("SNOWFLAKE_NODE"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		nodeNum = n
	} else {
		host, err := os.Hostname()
		if err != nil {
			return nil, err
		}
		h := fnv.New32a()
		_, _ = h.Write([]byte(host))
		nodeNum = int64(h.Sum32() % 1024)
	}

	node, err := snowflake.NewNode(nodeNum)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new unique int64 identifier.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
