package redis

import (
	"fmt"
	"regexp"
	"strings"
)

// RedisKeyGenerator génère et valide les clés Redis selon les conventions Gestion Projets
type RedisKeyGenerator struct {
	environment string
}

// NewRedisKeyGenerator crée une nouvelle instance du générateur
func NewRedisKeyGenerator(environment string) *RedisKeyGenerator {
	return &RedisKeyGenerator{environment: environment}
}

// RedisKeyPattern définit les patterns standards des clés selon les conventions
// Pattern: gestion_projets_{environnement}_{domain}_{context}:{identifier}
type RedisKeyPattern struct {
	Domain  string // local, cache...
	Context string // storage, dashboard...
	TTL     int    // TTL en secondes, 0 = pas d'expiration
}

// Patterns prédéfinis
var RedisKeyPatterns = map[string]RedisKeyPattern{
	// Clés du localStorage de la console (persistance sans expiration)
	"local_storage": {Domain: "local", Context: "storage", TTL: 0},
}

var (
	validKeyRegex     = regexp.MustCompile(`^[a-zA-Z0-9_:\-{}]+$`)
	validEnvironRegex = regexp.MustCompile(`^[a-z0-9]{2,20}$`)
)

// GenerateKey génère une clé Redis : gestion_projets_{environnement}_{domain}_{context}:{identifier}
func (rkg *RedisKeyGenerator) GenerateKey(patternName string, identifier ...string) (string, error) {
	pattern, exists := RedisKeyPatterns[patternName]
	if !exists {
		return "", fmt.Errorf("pattern Redis non trouvé: %s", patternName)
	}

	if !validEnvironRegex.MatchString(rkg.environment) {
		return "", fmt.Errorf("environnement invalide pour les clés Redis: %q", rkg.environment)
	}

	// Si pas d'identifier, retourner juste le préfixe (pour les clés singleton)
	key := rkg.prefix(pattern)
	if len(identifier) > 0 {
		key = fmt.Sprintf("%s:%s", key, strings.Join(identifier, "_"))
	}

	if err := rkg.ValidateKey(key); err != nil {
		return "", err
	}
	return key, nil
}

// GetTTL récupère le TTL d'un pattern
func (rkg *RedisKeyGenerator) GetTTL(patternName string) (int, error) {
	pattern, exists := RedisKeyPatterns[patternName]
	if !exists {
		return 0, fmt.Errorf("pattern Redis non trouvé: %s", patternName)
	}
	return pattern.TTL, nil
}

// ValidateKey valide qu'une clé respecte les conventions
func (rkg *RedisKeyGenerator) ValidateKey(key string) error {
	if len(key) == 0 {
		return fmt.Errorf("clé vide")
	}

	if len(key) > 250 {
		return fmt.Errorf("clé trop longue (max 250 caractères): %d", len(key))
	}

	if !validKeyRegex.MatchString(key) {
		return fmt.Errorf("clé contient des caractères invalides: %s", key)
	}

	if !strings.HasPrefix(key, "gestion_projets_") {
		return fmt.Errorf("clé doit commencer par 'gestion_projets_': %s", key)
	}

	prefixParts := strings.Split(strings.SplitN(key, ":", 2)[0], "_")
	if len(prefixParts) < 5 {
		return fmt.Errorf("structure préfixe invalide (format: gestion_projets_env_domain_context): %s", key)
	}

	return nil
}

// GenerateWildcardPattern génère un pattern wildcard pour recherche par domaine/context
func (rkg *RedisKeyGenerator) GenerateWildcardPattern(domain, context string) string {
	return fmt.Sprintf("gestion_projets_%s_%s_%s*", rkg.environment, domain, context)
}

func (rkg *RedisKeyGenerator) prefix(pattern RedisKeyPattern) string {
	return fmt.Sprintf("gestion_projets_%s_%s_%s", rkg.environment, pattern.Domain, pattern.Context)
}
