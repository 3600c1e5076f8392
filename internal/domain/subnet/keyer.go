package subnet

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
)

// DefaultMaskLength — длина маски по умолчанию (/24).
const DefaultMaskLength = 24

var ErrInvalidMaskLength = errors.New("mask length must be in range 0..32")

// Keyer вычисляет каноническое имя подсети по IPv4-адресу.
// Состояния не хранит, результат зависит только от адреса и длины маски.
type Keyer struct {
	bits int
	mask uint32
}

func NewKeyer(maskLength int) (*Keyer, error) {
	if maskLength < 0 || maskLength > 32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaskLength, maskLength)
	}
	return &Keyer{bits: maskLength, mask: maskOf(maskLength)}, nil
}

// maskOf строит маску из старших bits единичных бит.
// В Go сдвиг uint32 на 32 даёт 0, поэтому /0 и /32 считаются без особых случаев.
func maskOf(bits int) uint32 {
	return ^uint32(0) << (32 - uint(bits))
}

func (k *Keyer) MaskLength() int { return k.bits }

// Of возвращает подсеть для адреса. ok == false, если адрес не IPv4
// (IPv6, IPv4-mapped IPv6, мусор): такой адрес не учитывается вовсе.
func (k *Keyer) Of(address string) (domain.Subnet, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(address))
	if err != nil || !addr.Is4() {
		return "", false
	}
	return k.format(toUint32(addr) & k.mask), true
}

// Parse проверяет, что s является каноническим именем подсети этого Keyer:
// IPv4-адрес сети с обнулёнными битами хоста и та же длина маски.
func (k *Keyer) Parse(s string) (domain.Subnet, error) {
	addrPart, bitsPart, found := strings.Cut(s, "/")
	if !found {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSubnet, s)
	}
	bits, err := strconv.Atoi(bitsPart)
	if err != nil || bits != k.bits {
		return "", fmt.Errorf("%w: %q: expected /%d", domain.ErrInvalidSubnet, s, k.bits)
	}
	sn, ok := k.Of(addrPart)
	if !ok || string(sn) != s {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSubnet, s)
	}
	return sn, nil
}

func (k *Keyer) format(network uint32) domain.Subnet {
	addr := netip.AddrFrom4([4]byte{
		byte(network >> 24), byte(network >> 16), byte(network >> 8), byte(network),
	})
	return domain.Subnet(addr.String() + "/" + strconv.Itoa(k.bits))
}

func toUint32(addr netip.Addr) uint32 {
	b := addr.As4()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
