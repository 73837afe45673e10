package analyzing

import "errors"

// ErrUpstreamAuth indica que a fonte de dados rejeitou a requisição por falha
// de sessão ou autenticação. Nenhuma análise é confiável sem a fonte, então o
// erro derruba a orquestração inteira em vez de degradar para resultado vazio.
var ErrUpstreamAuth = errors.New("fonte de dados rejeitou a requisição por falha de autenticação")
