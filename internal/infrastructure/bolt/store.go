// Package bolt implementa la persistencia local de la aplicación sobre un
// archivo bbolt: un almacén clave-valor donde cada colección completa se
// guarda como un blob JSON bajo una clave fija. Es el equivalente embebido
// del localStorage del navegador: carga al arrancar, reescritura total del
// blob tras cada mutación, sin persistencia parcial ni incremental.
package bolt

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.etcd.io/bbolt"
)

// Claves de blob. Se conservan las del frontend original para que un export
// de aquel storage sea importable tal cual.
const (
	KeyProducts = "salesAppProducts"
	KeySales    = "salesAppSales"
)

var bucketName = []byte("ventas")

func init() {
	// Los montos se serializan como números JSON planos (costPrice: 10.5),
	// no como strings, para mantener el formato de blob documentado.
	decimal.MarshalJSONWithoutQuotes = true
}

// Store almacén de blobs JSON sobre un archivo bbolt.
type Store struct {
	db *bbolt.DB
}

// Open abre (o crea) el archivo de datos y asegura el bucket.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir almacén %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Load devuelve el blob bajo la clave dada. Clave ausente => (nil, false, nil);
// la primera ejecución arranca con colecciones vacías.
func (s *Store) Load(key string) ([]byte, bool, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			out = make([]byte, len(v))
			copy(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("leer %s: %w", key, err)
	}
	return out, out != nil, nil
}

// Save reescribe el blob completo bajo la clave dada.
func (s *Store) Save(key string, blob []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), blob)
	})
	if err != nil {
		return fmt.Errorf("guardar %s: %w", key, err)
	}
	return nil
}

// Close cierra el archivo de datos.
func (s *Store) Close() error { return s.db.Close() }
